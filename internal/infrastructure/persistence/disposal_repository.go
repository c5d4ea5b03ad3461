package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/asset"
	"gorm.io/gorm"
)

// GormDisposalRepository implements DisposalRepository using GORM
type GormDisposalRepository struct {
	db *gorm.DB
}

// NewGormDisposalRepository creates a new GormDisposalRepository
func NewGormDisposalRepository(db *gorm.DB) *GormDisposalRepository {
	return &GormDisposalRepository{db: db}
}

// FindByAssetID finds the disposal record for an asset
func (r *GormDisposalRepository) FindByAssetID(ctx context.Context, companyID, assetID uuid.UUID) (*asset.Disposal, error) {
	var d asset.Disposal
	if err := r.db.WithContext(ctx).
		First(&d, "asset_id = ? AND company_id = ?", assetID, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// FindAllForCompany returns the company's disposal history, newest first
func (r *GormDisposalRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]*asset.Disposal, error) {
	var disposals []*asset.Disposal
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("disposal_date desc").
		Find(&disposals).Error; err != nil {
		return nil, err
	}
	return disposals, nil
}

// Save persists a disposal record
func (r *GormDisposalRepository) Save(ctx context.Context, d *asset.Disposal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

var _ asset.DisposalRepository = (*GormDisposalRepository)(nil)
