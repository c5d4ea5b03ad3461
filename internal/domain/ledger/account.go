package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountType classifies a ledger account and determines how debits and
// credits move its running balance.
type AccountType string

const (
	AccountTypeAsset       AccountType = "ASSET"
	AccountTypeContraAsset AccountType = "CONTRA_ASSET"
	AccountTypeLiability   AccountType = "LIABILITY"
	AccountTypeEquity      AccountType = "EQUITY"
	AccountTypeRevenue     AccountType = "REVENUE"
	AccountTypeExpense     AccountType = "EXPENSE"
)

// IsValid checks if the account type is one of the supported values
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeContraAsset, AccountTypeLiability,
		AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// String returns the string representation
func (t AccountType) String() string {
	return string(t)
}

// DebitIncreases reports whether a debit posting increases the balance
// of an account of this type. Assets and expenses carry a debit normal
// balance; everything else carries a credit normal balance.
func (t AccountType) DebitIncreases() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account codes the system itself posts against. They are part of every
// seeded chart and must never be deactivated.
const (
	CodeBank            = "1001"
	CodeReceivables     = "1100"
	CodeFixedAssetCost  = "1500"
	CodeAccumDepr       = "1510"
	CodePayables        = "2001"
	CodeVATControl      = "2100"
	CodeSalesRevenue    = "4001"
	CodeDisposalGain    = "4200"
	CodePurchases       = "5001"
	CodeOperatingExp    = "5100"
	CodeVATInput        = "5200"
	CodeDisposalControl = "5900"
	CodeDeprExpense     = "6001"
	CodeDisposalLoss    = "6100"
)

// protectedCodes are referenced by built-in transaction type mappings
// and cannot be deactivated.
var protectedCodes = map[string]bool{
	CodeBank:            true,
	CodeReceivables:     true,
	CodeFixedAssetCost:  true,
	CodeAccumDepr:       true,
	CodePayables:        true,
	CodeVATControl:      true,
	CodeSalesRevenue:    true,
	CodeDisposalGain:    true,
	CodePurchases:       true,
	CodeOperatingExp:    true,
	CodeVATInput:        true,
	CodeDisposalControl: true,
	CodeDeprExpense:     true,
	CodeDisposalLoss:    true,
}

// IsProtectedCode reports whether the account code is reserved by
// built-in mappings.
func IsProtectedCode(code string) bool {
	return protectedCodes[code]
}

// Account is a ledger account in a company's chart of accounts.
// The code is unique per company. The running balance is mutated only by
// posted journal entries; accounts are never physically deleted.
type Account struct {
	shared.CompanyAggregateRoot
	Code     string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_accounts_company_code,priority:2"`
	Name     string          `gorm:"type:varchar(200);not null"`
	Type     AccountType     `gorm:"type:varchar(20);not null;index"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsActive bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account with a zero balance
func NewAccount(companyID uuid.UUID, code, name string, accountType AccountType) (*Account, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Account code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Account type is not valid")
	}

	return &Account{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Code:                 code,
		Name:                 name,
		Type:                 accountType,
		Balance:              decimal.Zero,
		IsActive:             true,
	}, nil
}

// ApplyDebit moves the running balance for a debit posting of the given amount
func (a *Account) ApplyDebit(amount decimal.Decimal) {
	if a.Type.DebitIncreases() {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// ApplyCredit moves the running balance for a credit posting of the given amount
func (a *Account) ApplyCredit(amount decimal.Decimal) {
	if a.Type.DebitIncreases() {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// Deactivate soft-deactivates the account. Protected codes stay active
// because built-in mappings post against them.
func (a *Account) Deactivate() error {
	if IsProtectedCode(a.Code) {
		return shared.NewDomainError("PROTECTED_ACCOUNT", "Account code is reserved by built-in mappings and cannot be deactivated")
	}
	if !a.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Account is already inactive")
	}
	a.IsActive = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}
