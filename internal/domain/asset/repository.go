package asset

import (
	"context"

	"github.com/google/uuid"
)

// FixedAssetRepository defines persistence for fixed assets.
// SaveWithLock updates only when the stored row still carries
// expectedVersion, the version the aggregate was loaded at.
type FixedAssetRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*FixedAsset, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]*FixedAsset, error)
	Save(ctx context.Context, a *FixedAsset) error
	SaveWithLock(ctx context.Context, a *FixedAsset, expectedVersion int) error
}

// DisposalRepository defines persistence for disposal records
type DisposalRepository interface {
	FindByAssetID(ctx context.Context, companyID, assetID uuid.UUID) (*Disposal, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]*Disposal, error)
	Save(ctx context.Context, d *Disposal) error
}
