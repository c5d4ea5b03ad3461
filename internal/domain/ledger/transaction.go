package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of business events the ledger knows
// how to post. Every value has exactly one active mapping; the seeder
// verifies totality at bootstrap.
type TransactionType string

const (
	TypeSaleCash            TransactionType = "sale_cash"
	TypeSaleCredit          TransactionType = "sale_credit"
	TypePurchaseCash        TransactionType = "purchase_cash"
	TypePurchaseCredit      TransactionType = "purchase_credit"
	TypeExpensePayment      TransactionType = "expense_payment"
	TypeMonthlyDepreciation TransactionType = "monthly_depreciation"
	TypeDisposalCostRemove  TransactionType = "disposal_cost_remove"
	TypeDisposalSaleCash    TransactionType = "disposal_sale_cash"
	TypeDisposalSaleCredit  TransactionType = "disposal_sale_credit"
	TypeDisposalGain        TransactionType = "disposal_gain"
	TypeDisposalLoss        TransactionType = "disposal_loss"
)

// AllTransactionTypes returns every supported transaction type
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TypeSaleCash, TypeSaleCredit, TypePurchaseCash, TypePurchaseCredit,
		TypeExpensePayment, TypeMonthlyDepreciation, TypeDisposalCostRemove,
		TypeDisposalSaleCash, TypeDisposalSaleCredit, TypeDisposalGain, TypeDisposalLoss,
	}
}

// IsValid checks if the transaction type is one of the supported values
func (t TransactionType) IsValid() bool {
	for _, known := range AllTransactionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// TaxRule describes the tax treatment of a transaction type. It is
// snapshotted onto each Transaction so later rule changes don't rewrite
// history.
type TaxRule struct {
	ApplyVAT bool `json:"apply_vat"`
}

// Transaction records one business event. It is immutable after
// creation; the journal entries it produced reference it.
type Transaction struct {
	shared.CompanyAggregateRoot
	Type        TransactionType `gorm:"type:varchar(30);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(500)"`
	ApplyVAT    bool            `gorm:"not null;default:false"` // TaxRule snapshot at recording time
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction creates a new immutable transaction record
func NewTransaction(companyID uuid.UUID, txType TransactionType, amount decimal.Decimal, date time.Time, description string, rule TaxRule) (*Transaction, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("UNKNOWN_TRANSACTION_TYPE", "Transaction type is not recognised")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}

	return &Transaction{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Type:                 txType,
		Amount:               amount,
		Date:                 date,
		Description:          description,
		ApplyVAT:             rule.ApplyVAT,
	}, nil
}

// TaxRule returns the tax rule snapshot captured at recording time
func (t *Transaction) TaxRule() TaxRule {
	return TaxRule{ApplyVAT: t.ApplyVAT}
}
