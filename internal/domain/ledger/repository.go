package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// AccountRepository persists ledger accounts
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Account, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Account, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Save(ctx context.Context, account *Account) error
	SaveAll(ctx context.Context, accounts []*Account) error
}

// JournalEntryRepository persists journal entries with their postings
type JournalEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JournalEntry, error)
	FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]JournalEntry, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter JournalEntryFilter) ([]JournalEntry, error)
	Save(ctx context.Context, entry *JournalEntry) error
}

// JournalEntryFilter defines filtering options for journal entry queries
type JournalEntryFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PageSize int
}

// TransactionRepository persists business transactions
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Transaction, error)
	Save(ctx context.Context, tx *Transaction) error
}

// MappingRepository persists global transaction type mappings
type MappingRepository interface {
	FindActiveByType(ctx context.Context, txType TransactionType) (*TransactionTypeMapping, error)
	FindAll(ctx context.Context) ([]TransactionTypeMapping, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, mappings []TransactionTypeMapping) error
}

// CoaTemplateRepository persists global chart-of-accounts templates
type CoaTemplateRepository interface {
	FindByOwnershipForm(ctx context.Context, form company.OwnershipForm) ([]CoaTemplate, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, templates []CoaTemplate) error
}

// ManualJournalRepository persists manual journals with their lines
type ManualJournalRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*ManualJournal, error)
	FindByReference(ctx context.Context, companyID uuid.UUID, reference string) (*ManualJournal, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]ManualJournal, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Save(ctx context.Context, mj *ManualJournal) error
}
