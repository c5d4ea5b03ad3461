package company

import (
	"github.com/ledgerza/backend/internal/domain/shared"
)

// OwnershipForm classifies the legal form of a company. The chart of
// accounts seeded at setup depends on it.
type OwnershipForm string

const (
	OwnershipSole        OwnershipForm = "SOLE"
	OwnershipPartnership OwnershipForm = "PARTNERSHIP"
	OwnershipLLC         OwnershipForm = "LLC"
	OwnershipCorporation OwnershipForm = "CORPORATION"
)

// AllOwnershipForms returns every supported ownership form
func AllOwnershipForms() []OwnershipForm {
	return []OwnershipForm{OwnershipSole, OwnershipPartnership, OwnershipLLC, OwnershipCorporation}
}

// IsValid checks if the ownership form is one of the supported values
func (f OwnershipForm) IsValid() bool {
	switch f {
	case OwnershipSole, OwnershipPartnership, OwnershipLLC, OwnershipCorporation:
		return true
	}
	return false
}

// String returns the string representation
func (f OwnershipForm) String() string {
	return string(f)
}

// Company represents a business entity using the ledger. Every account,
// transaction and journal entry is scoped to exactly one company.
type Company struct {
	shared.BaseAggregateRoot
	Name                 string        `gorm:"type:varchar(200);not null"`
	Ownership            OwnershipForm `gorm:"type:varchar(20);not null"`
	Address              string        `gorm:"type:varchar(500)"`
	FiscalYearStartMonth int           `gorm:"not null;default:3"` // March, standard SA fiscal year
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company
func NewCompany(name string, ownership OwnershipForm, address string, fiscalYearStartMonth int) (*Company, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	if !ownership.IsValid() {
		return nil, shared.NewDomainError("INVALID_OWNERSHIP_FORM", "Ownership form is not valid")
	}
	if fiscalYearStartMonth == 0 {
		fiscalYearStartMonth = 3
	}
	if fiscalYearStartMonth < 1 || fiscalYearStartMonth > 12 {
		return nil, shared.NewDomainError("INVALID_FISCAL_YEAR_START", "Fiscal year start month must be between 1 and 12")
	}

	return &Company{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		Name:                 name,
		Ownership:            ownership,
		Address:              address,
		FiscalYearStartMonth: fiscalYearStartMonth,
	}, nil
}
