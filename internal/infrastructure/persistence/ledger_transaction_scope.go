package persistence

import (
	"context"

	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormTransactionalRepositories) JournalEntryRepo() ledger.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) TransactionRepo() ledger.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

func (r *gormTransactionalRepositories) MappingRepo() ledger.MappingRepository {
	return NewGormMappingRepository(r.tx)
}

func (r *gormTransactionalRepositories) CoaTemplateRepo() ledger.CoaTemplateRepository {
	return NewGormCoaTemplateRepository(r.tx)
}

func (r *gormTransactionalRepositories) ManualJournalRepo() ledger.ManualJournalRepository {
	return NewGormManualJournalRepository(r.tx)
}

func (r *gormTransactionalRepositories) FixedAssetRepo() asset.FixedAssetRepository {
	return NewGormFixedAssetRepository(r.tx)
}

func (r *gormTransactionalRepositories) DisposalRepo() asset.DisposalRepository {
	return NewGormDisposalRepository(r.tx)
}

func (r *gormTransactionalRepositories) CompanyRepo() company.CompanyRepository {
	return NewGormCompanyRepository(r.tx)
}

func (r *gormTransactionalRepositories) TaxConfigRepo() company.TaxConfigRepository {
	return NewGormTaxConfigRepository(r.tx)
}

var _ appledger.TransactionScope = (*GormTransactionScope)(nil)
var _ appledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
