package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormJournalEntryRepository implements JournalEntryRepository using GORM
type GormJournalEntryRepository struct {
	db *gorm.DB
}

// NewGormJournalEntryRepository creates a new GormJournalEntryRepository
func NewGormJournalEntryRepository(db *gorm.DB) *GormJournalEntryRepository {
	return &GormJournalEntryRepository{db: db}
}

// FindByID finds a journal entry with its postings
func (r *GormJournalEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.JournalEntry, error) {
	var entry ledger.JournalEntry
	if err := r.db.WithContext(ctx).
		Preload("Postings").
		First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// FindByTransaction finds every journal entry produced by a transaction
func (r *GormJournalEntryRepository) FindByTransaction(ctx context.Context, transactionID uuid.UUID) ([]ledger.JournalEntry, error) {
	var entries []ledger.JournalEntry
	if err := r.db.WithContext(ctx).
		Preload("Postings").
		Where("transaction_id = ?", transactionID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindAllForCompany finds journal entries for a company with filtering
func (r *GormJournalEntryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter ledger.JournalEntryFilter) ([]ledger.JournalEntry, error) {
	var entries []ledger.JournalEntry
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)

	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Preload("Postings").Order("date desc, created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save persists a journal entry together with its postings
func (r *GormJournalEntryRepository) Save(ctx context.Context, entry *ledger.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

var _ ledger.JournalEntryRepository = (*GormJournalEntryRepository)(nil)
