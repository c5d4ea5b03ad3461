package ledger

import (
	"github.com/ledgerza/backend/internal/domain/shared"
)

// TransactionTypeMapping translates a transaction type into the debit
// and credit account codes it affects, plus its tax treatment. The
// mapping set is global business-rule configuration, deliberately not
// scoped per company: the per-company part is the chart of accounts the
// codes resolve against.
type TransactionTypeMapping struct {
	shared.BaseAggregateRoot
	Type        TransactionType `gorm:"type:varchar(30);not null;uniqueIndex"`
	DebitCode   string          `gorm:"type:varchar(10);not null"`
	CreditCode  string          `gorm:"type:varchar(10);not null"`
	ApplyVAT    bool            `gorm:"not null;default:false"`
	Description string          `gorm:"type:varchar(200)"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (TransactionTypeMapping) TableName() string {
	return "transaction_type_mappings"
}

// TaxRule returns the mapping's tax rule
func (m *TransactionTypeMapping) TaxRule() TaxRule {
	return TaxRule{ApplyVAT: m.ApplyVAT}
}

// VAT postings always use the same account pair, regardless of the
// transaction type that triggered them.
const (
	VATDebitCode  = CodeVATInput
	VATCreditCode = CodeVATControl
)

func builtinMapping(t TransactionType, debit, credit string, applyVAT bool, description string) TransactionTypeMapping {
	return TransactionTypeMapping{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              t,
		DebitCode:         debit,
		CreditCode:        credit,
		ApplyVAT:          applyVAT,
		Description:       description,
		IsActive:          true,
	}
}

// BuiltinMappings returns the seed set of transaction type mappings.
// One entry per TransactionType; the bootstrap seeder verifies totality.
func BuiltinMappings() []TransactionTypeMapping {
	return []TransactionTypeMapping{
		builtinMapping(TypeSaleCash, CodeBank, CodeSalesRevenue, true, "Cash sale"),
		builtinMapping(TypeSaleCredit, CodeReceivables, CodeSalesRevenue, true, "Credit sale"),
		builtinMapping(TypePurchaseCash, CodePurchases, CodeBank, false, "Cash purchase"),
		builtinMapping(TypePurchaseCredit, CodePurchases, CodePayables, false, "Credit purchase"),
		builtinMapping(TypeExpensePayment, CodeOperatingExp, CodeBank, false, "Operating expense payment"),
		builtinMapping(TypeMonthlyDepreciation, CodeDeprExpense, CodeAccumDepr, false, "Monthly depreciation charge"),
		builtinMapping(TypeDisposalCostRemove, CodeDisposalControl, CodeFixedAssetCost, false, "Remove asset cost on disposal"),
		builtinMapping(TypeDisposalSaleCash, CodeBank, CodeDisposalControl, false, "Disposal proceeds received in cash"),
		builtinMapping(TypeDisposalSaleCredit, CodeReceivables, CodeDisposalControl, false, "Disposal proceeds on credit"),
		builtinMapping(TypeDisposalGain, CodeDisposalControl, CodeDisposalGain, false, "Gain on asset disposal"),
		builtinMapping(TypeDisposalLoss, CodeDisposalLoss, CodeDisposalControl, false, "Loss on asset disposal"),
	}
}
