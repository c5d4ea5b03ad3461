package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	var account ledger.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindByCode finds an account by code within a company's chart
func (r *GormAccountRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*ledger.Account, error) {
	var account ledger.Account
	if err := r.db.WithContext(ctx).
		First(&account, "company_id = ? AND code = ?", companyID, code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindAllForCompany finds all accounts in a company's chart
func (r *GormAccountRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]ledger.Account, error) {
	var accounts []ledger.Account
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("code asc")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// CountForCompany counts the accounts in a company's chart
func (r *GormAccountRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ledger.Account{}).
		Where("company_id = ?", companyID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists an account (create or update)
func (r *GormAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// SaveAll persists a batch of accounts
func (r *GormAccountRepository) SaveAll(ctx context.Context, accounts []*ledger.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&accounts).Error
}

var _ ledger.AccountRepository = (*GormAccountRepository)(nil)
