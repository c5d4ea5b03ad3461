package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordTransactionInput describes one business event to record
type RecordTransactionInput struct {
	CompanyID   uuid.UUID
	Type        ledger.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// RecordTransactionResult is the transaction together with every journal
// entry it produced. Entries[0] is always the principal entry; a VAT
// entry follows when the type's tax rule applies. Resolved carries the
// accounts the mapping selected; VATAmount is zero when no VAT entry
// was posted.
type RecordTransactionResult struct {
	Transaction *ledger.Transaction
	Entries     []*ledger.JournalEntry
	Resolved    *ResolvedMapping
	VATAmount   decimal.Decimal
}

// RecordingService turns business events into ledger postings. The whole
// operation runs inside one transaction scope: mapping resolution, the
// transaction record, the principal entry and any VAT entry commit
// together or not at all.
type RecordingService struct {
	scope   TransactionScope
	posting *PostingService
	logger  *zap.Logger
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(scope TransactionScope, posting *PostingService, logger *zap.Logger) *RecordingService {
	return &RecordingService{scope: scope, posting: posting, logger: logger}
}

// RecordTransaction records a business event and posts its journal entries
func (s *RecordingService) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*RecordTransactionResult, error) {
	var result *RecordTransactionResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		result, err = s.recordIn(ctx, repos, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("type", input.Type.String()),
		zap.String("amount", input.Amount.String()),
		zap.Int("entries", len(result.Entries)))
	return result, nil
}

func (s *RecordingService) recordIn(ctx context.Context, repos TransactionalRepositories, input RecordTransactionInput) (*RecordTransactionResult, error) {
	resolved, err := ResolveMapping(ctx, repos, input.CompanyID, input.Type)
	if err != nil {
		return nil, err
	}

	tx, err := ledger.NewTransaction(input.CompanyID, input.Type, input.Amount,
		input.Date, input.Description, resolved.Mapping.TaxRule())
	if err != nil {
		return nil, err
	}
	if err := repos.TransactionRepo().Save(ctx, tx); err != nil {
		return nil, err
	}

	memo := input.Description
	if memo == "" {
		memo = resolved.Mapping.Description
	}
	principal, err := s.posting.PostEntryIn(ctx, repos, PostEntryInput{
		CompanyID:       input.CompanyID,
		Date:            input.Date,
		DebitAccountID:  resolved.Debit.ID,
		CreditAccountID: resolved.Credit.ID,
		Amount:          input.Amount,
		Memo:            memo,
		TransactionID:   &tx.ID,
	})
	if err != nil {
		return nil, err
	}
	entries := []*ledger.JournalEntry{principal}
	vatAmount := decimal.Zero

	if tx.ApplyVAT {
		vatEntry, err := s.postVAT(ctx, repos, tx, input)
		if err != nil {
			return nil, err
		}
		if vatEntry != nil {
			entries = append(entries, vatEntry)
			vatAmount = vatEntry.Amount
		}
	}

	return &RecordTransactionResult{
		Transaction: tx,
		Entries:     entries,
		Resolved:    resolved,
		VATAmount:   vatAmount,
	}, nil
}

func (s *RecordingService) postVAT(ctx context.Context, repos TransactionalRepositories, tx *ledger.Transaction, input RecordTransactionInput) (*ledger.JournalEntry, error) {
	cfg, err := ResolveTaxConfig(ctx, repos, input.CompanyID)
	if err != nil {
		return nil, err
	}
	vatAmount := cfg.VATAmountOn(input.Amount)
	if !vatAmount.IsPositive() {
		return nil, nil
	}

	vatDebit, vatCredit, err := ResolveVATAccounts(ctx, repos, input.CompanyID)
	if err != nil {
		return nil, err
	}
	return s.posting.PostEntryIn(ctx, repos, PostEntryInput{
		CompanyID:       input.CompanyID,
		Date:            input.Date,
		DebitAccountID:  vatDebit.ID,
		CreditAccountID: vatCredit.ID,
		Amount:          vatAmount,
		Memo:            fmt.Sprintf("VAT on %s", tx.Type),
		TransactionID:   &tx.ID,
	})
}
