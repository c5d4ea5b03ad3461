package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateManualJournalInput describes a new draft journal
type CreateManualJournalInput struct {
	CompanyID uuid.UUID
	Reference string
	Date      time.Time
	Memo      string
	Lines     []ledger.LineInput
}

// JournalManagerService manages the manual journal lifecycle: drafts are
// captured and edited, approved or rejected, and finally posted. Posting
// applies every line to its account balance inside one transaction
// scope.
type JournalManagerService struct {
	scope  TransactionScope
	repo   ledger.ManualJournalRepository
	logger *zap.Logger
}

// NewJournalManagerService creates a new JournalManagerService
func NewJournalManagerService(scope TransactionScope, repo ledger.ManualJournalRepository, logger *zap.Logger) *JournalManagerService {
	return &JournalManagerService{scope: scope, repo: repo, logger: logger}
}

// Create captures a new draft journal after validating its line accounts
func (s *JournalManagerService) Create(ctx context.Context, input CreateManualJournalInput) (*ledger.ManualJournal, error) {
	var mj *ledger.ManualJournal
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.validateLineAccounts(ctx, repos, input.CompanyID, input.Lines); err != nil {
			return err
		}

		existing, err := repos.ManualJournalRepo().FindByReference(ctx, input.CompanyID, input.Reference)
		if err != nil {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("DUPLICATE_REFERENCE", "A journal with this reference already exists")
		}

		mj, err = ledger.NewManualJournal(input.CompanyID, input.Reference, input.Date, input.Memo, input.Lines)
		if err != nil {
			return err
		}
		return repos.ManualJournalRepo().Save(ctx, mj)
	})
	if err != nil {
		return nil, err
	}
	return mj, nil
}

// UpdateLines replaces the lines of a draft journal
func (s *JournalManagerService) UpdateLines(ctx context.Context, companyID, id uuid.UUID, lines []ledger.LineInput) (*ledger.ManualJournal, error) {
	var mj *ledger.ManualJournal
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.validateLineAccounts(ctx, repos, companyID, lines); err != nil {
			return err
		}

		var err error
		mj, err = s.load(ctx, repos, companyID, id)
		if err != nil {
			return err
		}
		if err := mj.ReplaceLines(lines); err != nil {
			return err
		}
		return repos.ManualJournalRepo().Save(ctx, mj)
	})
	if err != nil {
		return nil, err
	}
	return mj, nil
}

// Get returns one journal by ID
func (s *JournalManagerService) Get(ctx context.Context, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	mj, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if mj == nil {
		return nil, shared.NewDomainError("JOURNAL_NOT_FOUND", "Manual journal does not exist")
	}
	return mj, nil
}

// List returns a page of the company's manual journals
func (s *JournalManagerService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[ledger.ManualJournal], error) {
	journals, err := s.repo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(journals, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Approve moves a draft to APPROVED
func (s *JournalManagerService) Approve(ctx context.Context, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	return s.transition(ctx, companyID, id, func(mj *ledger.ManualJournal) error {
		return mj.Approve()
	})
}

// Reject moves a draft to REJECTED with a reason
func (s *JournalManagerService) Reject(ctx context.Context, companyID, id uuid.UUID, reason string) (*ledger.ManualJournal, error) {
	return s.transition(ctx, companyID, id, func(mj *ledger.ManualJournal) error {
		return mj.Reject(reason)
	})
}

// Post applies an approved journal to account balances. The status
// change and every balance mutation commit atomically.
func (s *JournalManagerService) Post(ctx context.Context, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	var mj *ledger.ManualJournal
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		mj, err = s.load(ctx, repos, companyID, id)
		if err != nil {
			return err
		}
		if err := mj.MarkPosted(); err != nil {
			return err
		}

		for _, line := range mj.Lines {
			account, err := repos.AccountRepo().FindByID(ctx, line.AccountID)
			if err != nil {
				return err
			}
			if account == nil || account.CompanyID != companyID {
				return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Line account does not exist for this company")
			}
			if line.Debit.IsPositive() {
				account.ApplyDebit(line.Debit)
			} else {
				account.ApplyCredit(line.Credit)
			}
			if err := repos.AccountRepo().Save(ctx, account); err != nil {
				return err
			}
		}
		return repos.ManualJournalRepo().Save(ctx, mj)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("manual journal posted",
		zap.String("company_id", companyID.String()),
		zap.String("reference", mj.Reference),
		zap.Int("lines", len(mj.Lines)))
	return mj, nil
}

func (s *JournalManagerService) transition(ctx context.Context, companyID, id uuid.UUID, fn func(*ledger.ManualJournal) error) (*ledger.ManualJournal, error) {
	var mj *ledger.ManualJournal
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		mj, err = s.load(ctx, repos, companyID, id)
		if err != nil {
			return err
		}
		if err := fn(mj); err != nil {
			return err
		}
		return repos.ManualJournalRepo().Save(ctx, mj)
	})
	if err != nil {
		return nil, err
	}
	return mj, nil
}

func (s *JournalManagerService) load(ctx context.Context, repos TransactionalRepositories, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	mj, err := repos.ManualJournalRepo().FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if mj == nil {
		return nil, shared.NewDomainError("JOURNAL_NOT_FOUND", "Manual journal does not exist")
	}
	return mj, nil
}

func (s *JournalManagerService) validateLineAccounts(ctx context.Context, repos TransactionalRepositories, companyID uuid.UUID, lines []ledger.LineInput) error {
	for _, line := range lines {
		if line.AccountID == uuid.Nil {
			return shared.NewDomainError("INVALID_ACCOUNT", "Every line needs an account")
		}
		account, err := repos.AccountRepo().FindByID(ctx, line.AccountID)
		if err != nil {
			return err
		}
		if account == nil || account.CompanyID != companyID {
			return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Line account does not exist for this company")
		}
		if !account.IsActive {
			return shared.NewDomainError("INACTIVE_ACCOUNT", "Cannot post to an inactive account")
		}
	}
	return nil
}
