package ledger

import (
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// CoaTemplate is one line of a starter chart of accounts, keyed by
// ownership form. Seeded once globally and read-only afterwards.
type CoaTemplate struct {
	shared.BaseAggregateRoot
	OwnershipForm company.OwnershipForm `gorm:"type:varchar(20);not null;uniqueIndex:idx_coa_templates_form_code,priority:1"`
	Code          string                `gorm:"type:varchar(10);not null;uniqueIndex:idx_coa_templates_form_code,priority:2"`
	Name          string                `gorm:"type:varchar(200);not null"`
	Type          AccountType           `gorm:"type:varchar(20);not null"`
	SortOrder     int                   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CoaTemplate) TableName() string {
	return "coa_templates"
}

type templateLine struct {
	code string
	name string
	typ  AccountType
}

// commonLines are shared by every ownership form. Equity accounts
// differ per form and are appended separately.
var commonLines = []templateLine{
	{CodeBank, "Bank Account", AccountTypeAsset},
	{CodeReceivables, "Accounts Receivable", AccountTypeAsset},
	{CodeFixedAssetCost, "Fixed Assets at Cost", AccountTypeAsset},
	{CodeAccumDepr, "Accumulated Depreciation", AccountTypeContraAsset},
	{CodePayables, "Accounts Payable", AccountTypeLiability},
	{CodeVATControl, "VAT Control", AccountTypeLiability},
	{CodeSalesRevenue, "Sales Revenue", AccountTypeRevenue},
	{CodeDisposalGain, "Gain on Asset Disposal", AccountTypeRevenue},
	{CodePurchases, "Purchases", AccountTypeExpense},
	{CodeOperatingExp, "Operating Expenses", AccountTypeExpense},
	{CodeVATInput, "VAT Input", AccountTypeExpense},
	{CodeDisposalControl, "Asset Disposal Control", AccountTypeExpense},
	{CodeDeprExpense, "Depreciation Expense", AccountTypeExpense},
	{CodeDisposalLoss, "Loss on Asset Disposal", AccountTypeExpense},
}

var equityLines = map[company.OwnershipForm][]templateLine{
	company.OwnershipSole: {
		{"3001", "Owner's Capital", AccountTypeEquity},
		{"3002", "Owner's Drawings", AccountTypeEquity},
	},
	company.OwnershipPartnership: {
		{"3001", "Partners' Capital", AccountTypeEquity},
		{"3002", "Partners' Current Account", AccountTypeEquity},
	},
	company.OwnershipLLC: {
		{"3001", "Members' Contribution", AccountTypeEquity},
		{"3002", "Members' Loan Account", AccountTypeEquity},
	},
	company.OwnershipCorporation: {
		{"3001", "Share Capital", AccountTypeEquity},
		{"3002", "Retained Earnings", AccountTypeEquity},
	},
}

// BuiltinCoaTemplates returns the seed template rows for all four
// ownership forms.
func BuiltinCoaTemplates() []CoaTemplate {
	var templates []CoaTemplate
	for _, form := range company.AllOwnershipForms() {
		lines := make([]templateLine, 0, len(commonLines)+2)
		lines = append(lines, commonLines...)
		lines = append(lines, equityLines[form]...)
		for i, l := range lines {
			templates = append(templates, CoaTemplate{
				BaseAggregateRoot: shared.NewBaseAggregateRoot(),
				OwnershipForm:     form,
				Code:              l.code,
				Name:              l.name,
				Type:              l.typ,
				SortOrder:         i + 1,
			})
		}
	}
	return templates
}
