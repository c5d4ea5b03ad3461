package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var c company.Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindAll returns a page of companies
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]company.Company, error) {
	var companies []company.Company
	query := r.db.WithContext(ctx).Order("created_at desc")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Save persists a company (create or update)
func (r *GormCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

var _ company.CompanyRepository = (*GormCompanyRepository)(nil)

// GormTaxConfigRepository implements TaxConfigRepository using GORM
type GormTaxConfigRepository struct {
	db *gorm.DB
}

// NewGormTaxConfigRepository creates a new GormTaxConfigRepository
func NewGormTaxConfigRepository(db *gorm.DB) *GormTaxConfigRepository {
	return &GormTaxConfigRepository{db: db}
}

// FindByCompany finds the tax config for a company
func (r *GormTaxConfigRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) (*company.TaxConfig, error) {
	var cfg company.TaxConfig
	if err := r.db.WithContext(ctx).First(&cfg, "company_id = ?", companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Save persists a tax config (create or update)
func (r *GormTaxConfigRepository) Save(ctx context.Context, cfg *company.TaxConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

var _ company.TaxConfigRepository = (*GormTaxConfigRepository)(nil)
