package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormManualJournalRepository implements ManualJournalRepository using GORM
type GormManualJournalRepository struct {
	db *gorm.DB
}

// NewGormManualJournalRepository creates a new GormManualJournalRepository
func NewGormManualJournalRepository(db *gorm.DB) *GormManualJournalRepository {
	return &GormManualJournalRepository{db: db}
}

// FindByID finds a manual journal with its lines
func (r *GormManualJournalRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	var mj ledger.ManualJournal
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&mj, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mj, nil
}

// FindByReference finds a manual journal by its reference
func (r *GormManualJournalRepository) FindByReference(ctx context.Context, companyID uuid.UUID, reference string) (*ledger.ManualJournal, error) {
	var mj ledger.ManualJournal
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&mj, "reference = ? AND company_id = ?", reference, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mj, nil
}

// FindAllForCompany finds a company's manual journals, newest first
func (r *GormManualJournalRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]ledger.ManualJournal, error) {
	var journals []ledger.ManualJournal
	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date desc, created_at desc")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Preload("Lines").Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// CountForCompany counts a company's manual journals
func (r *GormManualJournalRepository) CountForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ledger.ManualJournal{}).
		Where("company_id = ?", companyID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a manual journal and replaces its lines
func (r *GormManualJournalRepository) Save(ctx context.Context, mj *ledger.ManualJournal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: false}).
			Omit("Lines").Save(mj).Error; err != nil {
			return err
		}
		if err := tx.Where("manual_journal_id = ?", mj.ID).
			Delete(&ledger.ManualJournalLine{}).Error; err != nil {
			return err
		}
		if len(mj.Lines) == 0 {
			return nil
		}
		for i := range mj.Lines {
			mj.Lines[i].ManualJournalID = mj.ID
		}
		return tx.Create(&mj.Lines).Error
	})
}

var _ ledger.ManualJournalRepository = (*GormManualJournalRepository)(nil)
