package asset

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DisposalMethod describes how the sale proceeds were settled
type DisposalMethod string

const (
	DisposalCash   DisposalMethod = "CASH"
	DisposalCredit DisposalMethod = "CREDIT"
)

// IsValid checks if the method is one of the supported values
func (m DisposalMethod) IsValid() bool {
	return m == DisposalCash || m == DisposalCredit
}

// String returns the string representation
func (m DisposalMethod) String() string {
	return string(m)
}

// Disposal records the outcome of a fixed-asset disposal: the catch-up
// depreciation charged, the net book value at disposal and the resulting
// gain or loss. GainLossEntryID is set only when ProfitLoss is non-zero.
type Disposal struct {
	shared.CompanyAggregateRoot
	AssetID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DisposalDate        time.Time       `gorm:"not null"`
	SellingPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Method              DisposalMethod  `gorm:"type:varchar(10);not null"`
	DepreciationCharged decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NetBookValue        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ProfitLoss          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	GainLossEntryID     *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Disposal) TableName() string {
	return "disposals"
}

// NewDisposal creates a disposal record for a finalized asset disposal
func NewDisposal(companyID, assetID uuid.UUID, disposalDate time.Time, sellingPrice decimal.Decimal, method DisposalMethod, depreciationCharged, netBookValue, profitLoss decimal.Decimal) (*Disposal, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSET", "Asset ID cannot be empty")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Disposal method must be CASH or CREDIT")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Selling price cannot be negative")
	}
	if disposalDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Disposal date is required")
	}

	return &Disposal{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		AssetID:              assetID,
		DisposalDate:         disposalDate,
		SellingPrice:         sellingPrice,
		Method:               method,
		DepreciationCharged:  depreciationCharged,
		NetBookValue:         netBookValue,
		ProfitLoss:           profitLoss,
	}, nil
}

// AttachGainLossEntry links the journal entry that recorded the gain or loss
func (d *Disposal) AttachGainLossEntry(entryID uuid.UUID) {
	d.GainLossEntryID = &entryID
	d.UpdatedAt = time.Now()
}

// IsGain reports whether the sale produced a profit
func (d *Disposal) IsGain() bool {
	return d.ProfitLoss.IsPositive()
}

// IsLoss reports whether the sale produced a loss
func (d *Disposal) IsLoss() bool {
	return d.ProfitLoss.IsNegative()
}
