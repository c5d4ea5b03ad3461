package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LedgerPosting is one side of a journal entry, tied to one account.
// Exactly one of Debit/Credit is nonzero.
type LedgerPosting struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	JournalEntryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Credit         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LedgerPosting) TableName() string {
	return "ledger_postings"
}

// JournalEntry is the atomic unit of ledger mutation: one balanced pair
// of postings representing a single accounting event. Entries are
// created atomically with both postings and are immutable afterwards.
type JournalEntry struct {
	shared.CompanyAggregateRoot
	Date            time.Time       `gorm:"not null;index"`
	DebitAccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreditAccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Memo            string          `gorm:"type:varchar(500)"`
	TransactionID   *uuid.UUID      `gorm:"type:uuid;index"` // source transaction, if any
	Postings        []LedgerPosting `gorm:"foreignKey:JournalEntryID;references:ID"`
}

// TableName returns the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// NewJournalEntry creates a balanced journal entry: one debit posting
// and one credit posting, each for the full amount. This constructor is
// the only way to build an entry, so an unbalanced entry cannot exist
// in memory, let alone on disk.
func NewJournalEntry(
	companyID uuid.UUID,
	date time.Time,
	debitAccountID, creditAccountID uuid.UUID,
	amount decimal.Decimal,
	memo string,
	transactionID *uuid.UUID,
) (*JournalEntry, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Journal entry date is required")
	}
	if debitAccountID == uuid.Nil || creditAccountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Both debit and credit accounts are required")
	}
	if debitAccountID == creditAccountID {
		return nil, shared.NewDomainError("SAME_ACCOUNT", "Debit and credit accounts must differ")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Journal entry amount must be positive")
	}

	entry := &JournalEntry{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Date:                 date,
		DebitAccountID:       debitAccountID,
		CreditAccountID:      creditAccountID,
		Amount:               amount,
		Memo:                 memo,
		TransactionID:        transactionID,
	}
	now := time.Now()
	entry.Postings = []LedgerPosting{
		{
			ID:             uuid.New(),
			JournalEntryID: entry.ID,
			AccountID:      debitAccountID,
			Debit:          amount,
			Credit:         decimal.Zero,
			CreatedAt:      now,
		},
		{
			ID:             uuid.New(),
			JournalEntryID: entry.ID,
			AccountID:      creditAccountID,
			Debit:          decimal.Zero,
			Credit:         amount,
			CreatedAt:      now,
		},
	}
	return entry, nil
}

// TotalDebits sums the debit column across postings
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Debit)
	}
	return total
}

// TotalCredits sums the credit column across postings
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		total = total.Add(p.Credit)
	}
	return total
}

// IsBalanced verifies the double-entry invariant:
// sum(debits) == sum(credits) == amount, over exactly two postings.
func (e *JournalEntry) IsBalanced() bool {
	return len(e.Postings) == 2 &&
		e.TotalDebits().Equal(e.Amount) &&
		e.TotalCredits().Equal(e.Amount)
}
