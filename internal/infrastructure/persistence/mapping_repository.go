package persistence

import (
	"context"
	"errors"

	"github.com/ledgerza/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormMappingRepository implements MappingRepository using GORM
type GormMappingRepository struct {
	db *gorm.DB
}

// NewGormMappingRepository creates a new GormMappingRepository
func NewGormMappingRepository(db *gorm.DB) *GormMappingRepository {
	return &GormMappingRepository{db: db}
}

// FindActiveByType finds the active mapping for a transaction type
func (r *GormMappingRepository) FindActiveByType(ctx context.Context, txType ledger.TransactionType) (*ledger.TransactionTypeMapping, error) {
	var mapping ledger.TransactionTypeMapping
	if err := r.db.WithContext(ctx).
		First(&mapping, "type = ? AND is_active = ?", txType, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

// FindAll returns every mapping, active or not
func (r *GormMappingRepository) FindAll(ctx context.Context) ([]ledger.TransactionTypeMapping, error) {
	var mappings []ledger.TransactionTypeMapping
	if err := r.db.WithContext(ctx).Order("type asc").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Count counts all mappings
func (r *GormMappingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ledger.TransactionTypeMapping{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveAll persists a batch of mappings
func (r *GormMappingRepository) SaveAll(ctx context.Context, mappings []ledger.TransactionTypeMapping) error {
	if len(mappings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&mappings).Error
}

var _ ledger.MappingRepository = (*GormMappingRepository)(nil)
