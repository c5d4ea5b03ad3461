package asset

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DisposalStatus tracks the one-way ACTIVE -> DISPOSED transition of a
// fixed asset. An asset can only be disposed once.
type DisposalStatus string

const (
	StatusActive   DisposalStatus = "ACTIVE"
	StatusDisposed DisposalStatus = "DISPOSED"
)

// IsValid checks if the status is one of the supported values
func (s DisposalStatus) IsValid() bool {
	return s == StatusActive || s == StatusDisposed
}

// String returns the string representation
func (s DisposalStatus) String() string {
	return string(s)
}

var monthsPerYear = decimal.NewFromInt(12)

// FixedAsset is a depreciating asset on a company's books. Straight-line
// depreciation with an annual fractional rate; accumulated depreciation
// never exceeds cost.
type FixedAsset struct {
	shared.CompanyAggregateRoot
	Name             string          `gorm:"type:varchar(200);not null"`
	CostPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DepreciationRate decimal.Decimal `gorm:"type:decimal(6,4);not null"` // annual, fractional (0.20 = 20%/year)
	PurchaseDate     time.Time       `gorm:"not null"`
	AccumDepr        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status           DisposalStatus  `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
	DisposalDate     *time.Time
	SellingPrice     *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (FixedAsset) TableName() string {
	return "fixed_assets"
}

// NewFixedAsset creates an active fixed asset
func NewFixedAsset(companyID uuid.UUID, name string, costPrice, depreciationRate decimal.Decimal, purchaseDate time.Time) (*FixedAsset, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ASSET_NAME", "Asset name cannot be empty")
	}
	if costPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_COST", "Asset cost must be positive")
	}
	if depreciationRate.IsNegative() || depreciationRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_RATE", "Depreciation rate must be a fraction between 0 and 1")
	}
	if purchaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Purchase date is required")
	}

	return &FixedAsset{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		CostPrice:            costPrice,
		DepreciationRate:     depreciationRate,
		PurchaseDate:         purchaseDate,
		AccumDepr:            decimal.Zero,
		Status:               StatusActive,
	}, nil
}

// MonthsBetween returns the calendar year/month difference between the
// purchase date and a later date, floored at zero. Days are ignored:
// 2023-01-31 to 2024-01-01 is 12 months.
func MonthsBetween(later, earlier time.Time) int {
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if months < 0 {
		return 0
	}
	return months
}

// MonthlyDepreciation is the straight-line charge for one month
func (a *FixedAsset) MonthlyDepreciation() decimal.Decimal {
	return a.CostPrice.Mul(a.DepreciationRate.Div(monthsPerYear))
}

// DepreciationUntil computes total depreciation owed from purchase to
// the given date, capped at cost so net book value never goes negative.
func (a *FixedAsset) DepreciationUntil(date time.Time) decimal.Decimal {
	months := MonthsBetween(date, a.PurchaseDate)
	total := a.MonthlyDepreciation().Mul(decimal.NewFromInt(int64(months)))
	if total.GreaterThan(a.CostPrice) {
		return a.CostPrice
	}
	return total
}

// NetBookValueAt is cost minus capped depreciation at the given date,
// floored at zero.
func (a *FixedAsset) NetBookValueAt(date time.Time) decimal.Decimal {
	nbv := a.CostPrice.Sub(a.DepreciationUntil(date))
	if nbv.IsNegative() {
		return decimal.Zero
	}
	return nbv
}

// ApplyDepreciation increases accumulated depreciation by the given
// catch-up amount.
func (a *FixedAsset) ApplyDepreciation(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Depreciation amount must be positive")
	}
	if a.AccumDepr.Add(amount).GreaterThan(a.CostPrice) {
		return shared.NewDomainError("DEPRECIATION_EXCEEDS_COST", "Accumulated depreciation cannot exceed asset cost")
	}
	a.AccumDepr = a.AccumDepr.Add(amount)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// MarkDisposed finalizes the asset after its disposal workflow. One-way:
// a disposed asset cannot be disposed again.
func (a *FixedAsset) MarkDisposed(disposalDate time.Time, sellingPrice decimal.Decimal) error {
	if a.Status == StatusDisposed {
		return shared.NewDomainErrorf("ALREADY_DISPOSED", "Asset %s has already been disposed", a.Name)
	}
	if disposalDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Disposal date is required")
	}
	if sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Selling price cannot be negative")
	}
	now := time.Now()
	a.Status = StatusDisposed
	a.DisposalDate = &disposalDate
	a.SellingPrice = &sellingPrice
	a.UpdatedAt = now
	a.IncrementVersion()
	return nil
}

// IsDisposed returns true once the asset has been disposed
func (a *FixedAsset) IsDisposed() bool {
	return a.Status == StatusDisposed
}
