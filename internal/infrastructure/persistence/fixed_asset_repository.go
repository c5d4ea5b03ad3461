package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFixedAssetRepository implements FixedAssetRepository using GORM
type GormFixedAssetRepository struct {
	db *gorm.DB
}

// NewGormFixedAssetRepository creates a new GormFixedAssetRepository
func NewGormFixedAssetRepository(db *gorm.DB) *GormFixedAssetRepository {
	return &GormFixedAssetRepository{db: db}
}

// FindByID finds a fixed asset by ID for a company
func (r *GormFixedAssetRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*asset.FixedAsset, error) {
	var a asset.FixedAsset
	if err := r.db.WithContext(ctx).
		First(&a, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// FindAllForCompany returns the company's asset register
func (r *GormFixedAssetRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]*asset.FixedAsset, error) {
	var assets []*asset.FixedAsset
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("purchase_date asc").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Save persists a fixed asset (create or update)
func (r *GormFixedAssetRepository) Save(ctx context.Context, a *asset.FixedAsset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// SaveWithLock saves with optimistic locking: the update applies only
// when the stored row is still at expectedVersion, the version the
// caller loaded the aggregate at.
func (r *GormFixedAssetRepository) SaveWithLock(ctx context.Context, a *asset.FixedAsset, expectedVersion int) error {
	result := r.db.WithContext(ctx).
		Model(a).
		Where("id = ? AND version = ?", a.ID, expectedVersion).
		Select("*").
		Updates(a)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "Asset was modified by another transaction")
	}
	return nil
}

var _ asset.FixedAssetRepository = (*GormFixedAssetRepository)(nil)
