package ledger

import (
	"context"

	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and are committed or
// rolled back atomically. Every posting workflow runs inside one scope so a
// failure partway through leaves no partial writes.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// AccountRepo returns the account repository scoped to the current transaction
	AccountRepo() ledger.AccountRepository
	// JournalEntryRepo returns the journal entry repository scoped to the current transaction
	JournalEntryRepo() ledger.JournalEntryRepository
	// TransactionRepo returns the business transaction repository scoped to the current transaction
	TransactionRepo() ledger.TransactionRepository
	// MappingRepo returns the transaction type mapping repository scoped to the current transaction
	MappingRepo() ledger.MappingRepository
	// CoaTemplateRepo returns the chart-of-accounts template repository scoped to the current transaction
	CoaTemplateRepo() ledger.CoaTemplateRepository
	// ManualJournalRepo returns the manual journal repository scoped to the current transaction
	ManualJournalRepo() ledger.ManualJournalRepository
	// FixedAssetRepo returns the fixed asset repository scoped to the current transaction
	FixedAssetRepo() asset.FixedAssetRepository
	// DisposalRepo returns the disposal repository scoped to the current transaction
	DisposalRepo() asset.DisposalRepository
	// CompanyRepo returns the company repository scoped to the current transaction
	CompanyRepo() company.CompanyRepository
	// TaxConfigRepo returns the tax config repository scoped to the current transaction
	TaxConfigRepo() company.TaxConfigRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests that exercise service logic against mocks.
type NoOpTransactionScope struct {
	accountRepo       ledger.AccountRepository
	journalEntryRepo  ledger.JournalEntryRepository
	transactionRepo   ledger.TransactionRepository
	mappingRepo       ledger.MappingRepository
	coaTemplateRepo   ledger.CoaTemplateRepository
	manualJournalRepo ledger.ManualJournalRepository
	fixedAssetRepo    asset.FixedAssetRepository
	disposalRepo      asset.DisposalRepository
	companyRepo       company.CompanyRepository
	taxConfigRepo     company.TaxConfigRepository
}

// NoOpScopeParams bundles the repositories a NoOpTransactionScope serves.
type NoOpScopeParams struct {
	Accounts       ledger.AccountRepository
	JournalEntries ledger.JournalEntryRepository
	Transactions   ledger.TransactionRepository
	Mappings       ledger.MappingRepository
	CoaTemplates   ledger.CoaTemplateRepository
	ManualJournals ledger.ManualJournalRepository
	FixedAssets    asset.FixedAssetRepository
	Disposals      asset.DisposalRepository
	Companies      company.CompanyRepository
	TaxConfigs     company.TaxConfigRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(params NoOpScopeParams) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo:       params.Accounts,
		journalEntryRepo:  params.JournalEntries,
		transactionRepo:   params.Transactions,
		mappingRepo:       params.Mappings,
		coaTemplateRepo:   params.CoaTemplates,
		manualJournalRepo: params.ManualJournals,
		fixedAssetRepo:    params.FixedAssets,
		disposalRepo:      params.Disposals,
		companyRepo:       params.Companies,
		taxConfigRepo:     params.TaxConfigs,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository             { return s.accountRepo }
func (s *NoOpTransactionScope) JournalEntryRepo() ledger.JournalEntryRepository  { return s.journalEntryRepo }
func (s *NoOpTransactionScope) TransactionRepo() ledger.TransactionRepository    { return s.transactionRepo }
func (s *NoOpTransactionScope) MappingRepo() ledger.MappingRepository            { return s.mappingRepo }
func (s *NoOpTransactionScope) CoaTemplateRepo() ledger.CoaTemplateRepository    { return s.coaTemplateRepo }
func (s *NoOpTransactionScope) ManualJournalRepo() ledger.ManualJournalRepository {
	return s.manualJournalRepo
}
func (s *NoOpTransactionScope) FixedAssetRepo() asset.FixedAssetRepository { return s.fixedAssetRepo }
func (s *NoOpTransactionScope) DisposalRepo() asset.DisposalRepository     { return s.disposalRepo }
func (s *NoOpTransactionScope) CompanyRepo() company.CompanyRepository     { return s.companyRepo }
func (s *NoOpTransactionScope) TaxConfigRepo() company.TaxConfigRepository { return s.taxConfigRepo }

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
