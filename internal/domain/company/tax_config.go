package company

import (
	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultVATRate is the standard South African VAT rate
var DefaultVATRate = decimal.NewFromFloat(0.15)

// TaxConfig holds per-company tax settings. One row per company,
// created at company setup.
type TaxConfig struct {
	shared.BaseAggregateRoot
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	VATRate       decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	VATRegistered bool            `gorm:"not null;default:true"`
	TaxReference  string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (TaxConfig) TableName() string {
	return "tax_configs"
}

// NewTaxConfig creates a tax config for a company. A zero rate argument
// falls back to the standard VAT rate.
func NewTaxConfig(companyID uuid.UUID, vatRate decimal.Decimal) (*TaxConfig, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if vatRate.IsZero() {
		vatRate = DefaultVATRate
	}
	if vatRate.IsNegative() || vatRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate must be a fraction between 0 and 1")
	}

	return &TaxConfig{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyID:         companyID,
		VATRate:           vatRate,
		VATRegistered:     true,
	}, nil
}

// VATAmountOn computes the VAT portion for a transaction amount
func (t *TaxConfig) VATAmountOn(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.VATRate).Round(2)
}
