package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ManualJournalStatus is the lifecycle of a manually captured journal:
// DRAFT -> (APPROVED | REJECTED), APPROVED -> POSTED.
type ManualJournalStatus string

const (
	ManualJournalDraft    ManualJournalStatus = "DRAFT"
	ManualJournalApproved ManualJournalStatus = "APPROVED"
	ManualJournalRejected ManualJournalStatus = "REJECTED"
	ManualJournalPosted   ManualJournalStatus = "POSTED"
)

// IsValid checks if the status is one of the supported values
func (s ManualJournalStatus) IsValid() bool {
	switch s {
	case ManualJournalDraft, ManualJournalApproved, ManualJournalRejected, ManualJournalPosted:
		return true
	}
	return false
}

// String returns the string representation
func (s ManualJournalStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status allows no further transitions
func (s ManualJournalStatus) IsTerminal() bool {
	return s == ManualJournalRejected || s == ManualJournalPosted
}

// CanApprove reports whether the journal can be approved or rejected
func (s ManualJournalStatus) CanApprove() bool {
	return s == ManualJournalDraft
}

// CanPost reports whether the journal can be posted
func (s ManualJournalStatus) CanPost() bool {
	return s == ManualJournalApproved
}

// BalanceTolerance is the maximum permitted difference between total
// debits and total credits of a manual journal.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// ManualJournalLine is one line of a manual journal. Exactly one of
// Debit/Credit is nonzero.
type ManualJournalLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	ManualJournalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Credit          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Memo            string          `gorm:"type:varchar(255)"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ManualJournalLine) TableName() string {
	return "manual_journal_lines"
}

// ManualJournal is an interactively captured journal entry. Unlike the
// automatic two-posting JournalEntry it supports any number of lines;
// it shares the balance invariant but goes through an approval flow
// before it touches account balances.
type ManualJournal struct {
	shared.CompanyAggregateRoot
	Reference    string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_manual_journals_company_ref,priority:2"`
	Date         time.Time           `gorm:"not null;index"`
	Memo         string              `gorm:"type:varchar(500)"`
	Status       ManualJournalStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Lines        []ManualJournalLine `gorm:"foreignKey:ManualJournalID;references:ID"`
	ApprovedAt   *time.Time
	RejectedAt   *time.Time
	RejectReason string `gorm:"type:varchar(500)"`
	PostedAt     *time.Time
}

// TableName returns the table name for GORM
func (ManualJournal) TableName() string {
	return "manual_journals"
}

// LineInput describes one line when creating or updating a draft
type LineInput struct {
	AccountID uuid.UUID
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Memo      string
}

// NewManualJournal creates a draft manual journal with the given lines
func NewManualJournal(companyID uuid.UUID, reference string, date time.Time, memo string, lines []LineInput) (*ManualJournal, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Journal reference cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Journal date is required")
	}

	mj := &ManualJournal{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Date:                 date,
		Memo:                 memo,
		Status:               ManualJournalDraft,
	}
	if err := mj.ReplaceLines(lines); err != nil {
		return nil, err
	}
	return mj, nil
}

// ReplaceLines swaps the draft's lines for a new set. Only drafts can
// be edited.
func (mj *ManualJournal) ReplaceLines(lines []LineInput) error {
	if mj.Status != ManualJournalDraft {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot edit journal in %s status", mj.Status)
	}
	if len(lines) < 2 {
		return shared.NewDomainError("INVALID_LINES", "A journal needs at least two lines")
	}

	built := make([]ManualJournalLine, 0, len(lines))
	now := time.Now()
	for _, l := range lines {
		if l.AccountID == uuid.Nil {
			return shared.NewDomainError("INVALID_ACCOUNT", "Every line needs an account")
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", "Line amounts cannot be negative")
		}
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			return shared.NewDomainError("INVALID_LINE", "Each line must have exactly one of debit or credit")
		}
		built = append(built, ManualJournalLine{
			ID:              uuid.New(),
			ManualJournalID: mj.ID,
			AccountID:       l.AccountID,
			Debit:           l.Debit,
			Credit:          l.Credit,
			Memo:            l.Memo,
			CreatedAt:       now,
		})
	}

	if err := checkLinesBalanced(built); err != nil {
		return err
	}
	mj.Lines = built
	mj.UpdatedAt = now
	return nil
}

// TotalDebits sums the debit column across lines
func (mj *ManualJournal) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range mj.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit column across lines
func (mj *ManualJournal) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range mj.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// CheckBalanced verifies |debits - credits| < tolerance
func (mj *ManualJournal) CheckBalanced() error {
	return checkLinesBalanced(mj.Lines)
}

func checkLinesBalanced(lines []ManualJournalLine) error {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	diff := debits.Sub(credits).Abs()
	if diff.GreaterThanOrEqual(BalanceTolerance) {
		return shared.NewDomainErrorf("UNBALANCED_ENTRY", "Journal is out of balance by %s", diff.StringFixed(2))
	}
	return nil
}

// Approve moves a draft to APPROVED
func (mj *ManualJournal) Approve() error {
	if !mj.Status.CanApprove() {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot approve journal in %s status", mj.Status)
	}
	if err := mj.CheckBalanced(); err != nil {
		return err
	}
	now := time.Now()
	mj.Status = ManualJournalApproved
	mj.ApprovedAt = &now
	mj.UpdatedAt = now
	mj.IncrementVersion()
	return nil
}

// Reject moves a draft to REJECTED with a reason
func (mj *ManualJournal) Reject(reason string) error {
	if !mj.Status.CanApprove() {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot reject journal in %s status", mj.Status)
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}
	now := time.Now()
	mj.Status = ManualJournalRejected
	mj.RejectedAt = &now
	mj.RejectReason = reason
	mj.UpdatedAt = now
	mj.IncrementVersion()
	return nil
}

// MarkPosted moves an approved journal to POSTED. The caller applies the
// lines to account balances in the same transaction.
func (mj *ManualJournal) MarkPosted() error {
	if !mj.Status.CanPost() {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot post journal in %s status", mj.Status)
	}
	if err := mj.CheckBalanced(); err != nil {
		return err
	}
	now := time.Now()
	mj.Status = ManualJournalPosted
	mj.PostedAt = &now
	mj.UpdatedAt = now
	mj.IncrementVersion()
	return nil
}
