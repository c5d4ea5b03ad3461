package persistence

import (
	"context"

	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormCoaTemplateRepository implements CoaTemplateRepository using GORM
type GormCoaTemplateRepository struct {
	db *gorm.DB
}

// NewGormCoaTemplateRepository creates a new GormCoaTemplateRepository
func NewGormCoaTemplateRepository(db *gorm.DB) *GormCoaTemplateRepository {
	return &GormCoaTemplateRepository{db: db}
}

// FindByOwnershipForm returns the template rows for one ownership form
func (r *GormCoaTemplateRepository) FindByOwnershipForm(ctx context.Context, form company.OwnershipForm) ([]ledger.CoaTemplate, error) {
	var templates []ledger.CoaTemplate
	if err := r.db.WithContext(ctx).
		Where("ownership_form = ?", form).
		Order("sort_order asc").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Count counts all template rows
func (r *GormCoaTemplateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ledger.CoaTemplate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveAll persists a batch of template rows
func (r *GormCoaTemplateRepository) SaveAll(ctx context.Context, templates []ledger.CoaTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&templates).Error
}

var _ ledger.CoaTemplateRepository = (*GormCoaTemplateRepository)(nil)
