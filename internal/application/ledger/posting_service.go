package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PostEntryInput describes one journal entry to post
type PostEntryInput struct {
	CompanyID       uuid.UUID
	Date            time.Time
	DebitAccountID  uuid.UUID
	CreditAccountID uuid.UUID
	Amount          decimal.Decimal
	Memo            string
	TransactionID   *uuid.UUID
}

// PostingService is the low-level posting primitive. Every balance
// mutation in the system funnels through it: it loads both accounts,
// creates the balanced entry and moves the running balances in one
// step. Higher-level workflows call PostEntryIn from inside their own
// transaction scope so multiple entries commit or roll back together.
type PostingService struct {
	scope TransactionScope
}

// NewPostingService creates a new PostingService
func NewPostingService(scope TransactionScope) *PostingService {
	return &PostingService{scope: scope}
}

// PostEntry posts a single journal entry in its own transaction
func (s *PostingService) PostEntry(ctx context.Context, input PostEntryInput) (*ledger.JournalEntry, error) {
	var entry *ledger.JournalEntry
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		entry, err = s.PostEntryIn(ctx, repos, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// PostEntryIn posts a journal entry using repositories that belong to an
// enclosing transaction. The caller owns the commit/rollback decision.
func (s *PostingService) PostEntryIn(ctx context.Context, repos TransactionalRepositories, input PostEntryInput) (*ledger.JournalEntry, error) {
	debit, err := s.loadPostableAccount(ctx, repos, input.CompanyID, input.DebitAccountID)
	if err != nil {
		return nil, err
	}
	credit, err := s.loadPostableAccount(ctx, repos, input.CompanyID, input.CreditAccountID)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewJournalEntry(input.CompanyID, input.Date,
		debit.ID, credit.ID, input.Amount, input.Memo, input.TransactionID)
	if err != nil {
		return nil, err
	}

	debit.ApplyDebit(input.Amount)
	credit.ApplyCredit(input.Amount)

	if err := repos.AccountRepo().Save(ctx, debit); err != nil {
		return nil, err
	}
	if err := repos.AccountRepo().Save(ctx, credit); err != nil {
		return nil, err
	}
	if err := repos.JournalEntryRepo().Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PostingService) loadPostableAccount(ctx context.Context, repos TransactionalRepositories, companyID, accountID uuid.UUID) (*ledger.Account, error) {
	account, err := repos.AccountRepo().FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.CompanyID != companyID {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Account does not exist for this company")
	}
	if !account.IsActive {
		return nil, shared.NewDomainError("INACTIVE_ACCOUNT", "Cannot post to an inactive account")
	}
	return account, nil
}
