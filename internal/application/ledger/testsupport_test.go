package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// In-memory repository fakes backing the service tests in this package.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*ledger.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*ledger.Account)}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByCode(_ context.Context, companyID uuid.UUID, code string) (*ledger.Account, error) {
	for _, a := range r.accounts {
		if a.CompanyID == companyID && a.Code == code {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter shared.Filter) ([]ledger.Account, error) {
	var result []ledger.Account
	for _, a := range r.accounts {
		if a.CompanyID == companyID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) CountForCompany(_ context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	for _, a := range r.accounts {
		if a.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, account *ledger.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) SaveAll(_ context.Context, accounts []*ledger.Account) error {
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return nil
}

type fakeJournalEntryRepo struct {
	entries []*ledger.JournalEntry
}

func (r *fakeJournalEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.JournalEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeJournalEntryRepo) FindByTransaction(_ context.Context, transactionID uuid.UUID) ([]ledger.JournalEntry, error) {
	var result []ledger.JournalEntry
	for _, e := range r.entries {
		if e.TransactionID != nil && *e.TransactionID == transactionID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeJournalEntryRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter ledger.JournalEntryFilter) ([]ledger.JournalEntry, error) {
	var result []ledger.JournalEntry
	for _, e := range r.entries {
		if e.CompanyID == companyID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeJournalEntryRepo) Save(_ context.Context, entry *ledger.JournalEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*ledger.Transaction
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter shared.Filter) ([]ledger.Transaction, error) {
	var result []ledger.Transaction
	for _, tx := range r.transactions {
		if tx.CompanyID == companyID {
			result = append(result, *tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepo) Save(_ context.Context, tx *ledger.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

type fakeMappingRepo struct {
	mappings []ledger.TransactionTypeMapping
}

func (r *fakeMappingRepo) FindActiveByType(_ context.Context, txType ledger.TransactionType) (*ledger.TransactionTypeMapping, error) {
	for i := range r.mappings {
		if r.mappings[i].Type == txType && r.mappings[i].IsActive {
			return &r.mappings[i], nil
		}
	}
	return nil, nil
}

func (r *fakeMappingRepo) FindAll(_ context.Context) ([]ledger.TransactionTypeMapping, error) {
	return r.mappings, nil
}

func (r *fakeMappingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.mappings)), nil
}

func (r *fakeMappingRepo) SaveAll(_ context.Context, mappings []ledger.TransactionTypeMapping) error {
	r.mappings = append(r.mappings, mappings...)
	return nil
}

type fakeCoaTemplateRepo struct {
	templates []ledger.CoaTemplate
}

func (r *fakeCoaTemplateRepo) FindByOwnershipForm(_ context.Context, form company.OwnershipForm) ([]ledger.CoaTemplate, error) {
	var result []ledger.CoaTemplate
	for _, t := range r.templates {
		if t.OwnershipForm == form {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *fakeCoaTemplateRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.templates)), nil
}

func (r *fakeCoaTemplateRepo) SaveAll(_ context.Context, templates []ledger.CoaTemplate) error {
	r.templates = append(r.templates, templates...)
	return nil
}

type fakeManualJournalRepo struct {
	journals map[uuid.UUID]*ledger.ManualJournal
}

func newFakeManualJournalRepo() *fakeManualJournalRepo {
	return &fakeManualJournalRepo{journals: make(map[uuid.UUID]*ledger.ManualJournal)}
}

func (r *fakeManualJournalRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
	mj, ok := r.journals[id]
	if !ok || mj.CompanyID != companyID {
		return nil, nil
	}
	return mj, nil
}

func (r *fakeManualJournalRepo) FindByReference(_ context.Context, companyID uuid.UUID, reference string) (*ledger.ManualJournal, error) {
	for _, mj := range r.journals {
		if mj.CompanyID == companyID && strings.EqualFold(mj.Reference, reference) {
			return mj, nil
		}
	}
	return nil, nil
}

func (r *fakeManualJournalRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, filter shared.Filter) ([]ledger.ManualJournal, error) {
	var result []ledger.ManualJournal
	for _, mj := range r.journals {
		if mj.CompanyID == companyID {
			result = append(result, *mj)
		}
	}
	return result, nil
}

func (r *fakeManualJournalRepo) CountForCompany(_ context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	for _, mj := range r.journals {
		if mj.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

func (r *fakeManualJournalRepo) Save(_ context.Context, mj *ledger.ManualJournal) error {
	r.journals[mj.ID] = mj
	return nil
}

type fakeFixedAssetRepo struct {
	assets map[uuid.UUID]*asset.FixedAsset
}

func newFakeFixedAssetRepo() *fakeFixedAssetRepo {
	return &fakeFixedAssetRepo{assets: make(map[uuid.UUID]*asset.FixedAsset)}
}

func (r *fakeFixedAssetRepo) FindByID(_ context.Context, companyID, id uuid.UUID) (*asset.FixedAsset, error) {
	a, ok := r.assets[id]
	if !ok || a.CompanyID != companyID {
		return nil, nil
	}
	return a, nil
}

func (r *fakeFixedAssetRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID) ([]*asset.FixedAsset, error) {
	var result []*asset.FixedAsset
	for _, a := range r.assets {
		if a.CompanyID == companyID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeFixedAssetRepo) Save(_ context.Context, a *asset.FixedAsset) error {
	r.assets[a.ID] = a
	return nil
}

func (r *fakeFixedAssetRepo) SaveWithLock(_ context.Context, a *asset.FixedAsset, _ int) error {
	r.assets[a.ID] = a
	return nil
}

type fakeDisposalRepo struct {
	disposals map[uuid.UUID]*asset.Disposal
}

func newFakeDisposalRepo() *fakeDisposalRepo {
	return &fakeDisposalRepo{disposals: make(map[uuid.UUID]*asset.Disposal)}
}

func (r *fakeDisposalRepo) FindByAssetID(_ context.Context, companyID, assetID uuid.UUID) (*asset.Disposal, error) {
	for _, d := range r.disposals {
		if d.CompanyID == companyID && d.AssetID == assetID {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDisposalRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID) ([]*asset.Disposal, error) {
	var result []*asset.Disposal
	for _, d := range r.disposals {
		if d.CompanyID == companyID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeDisposalRepo) Save(_ context.Context, d *asset.Disposal) error {
	r.disposals[d.ID] = d
	return nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*company.Company)}
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*company.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) FindAll(_ context.Context, filter shared.Filter) ([]company.Company, error) {
	var result []company.Company
	for _, c := range r.companies {
		result = append(result, *c)
	}
	return result, nil
}

func (r *fakeCompanyRepo) Save(_ context.Context, c *company.Company) error {
	r.companies[c.ID] = c
	return nil
}

type fakeTaxConfigRepo struct {
	configs map[uuid.UUID]*company.TaxConfig
}

func newFakeTaxConfigRepo() *fakeTaxConfigRepo {
	return &fakeTaxConfigRepo{configs: make(map[uuid.UUID]*company.TaxConfig)}
}

func (r *fakeTaxConfigRepo) FindByCompany(_ context.Context, companyID uuid.UUID) (*company.TaxConfig, error) {
	return r.configs[companyID], nil
}

func (r *fakeTaxConfigRepo) Save(_ context.Context, cfg *company.TaxConfig) error {
	r.configs[cfg.CompanyID] = cfg
	return nil
}

// testScope bundles the fakes behind a NoOpTransactionScope
type testScope struct {
	*NoOpTransactionScope
	accounts       *fakeAccountRepo
	entries        *fakeJournalEntryRepo
	transactions   *fakeTransactionRepo
	mappings       *fakeMappingRepo
	templates      *fakeCoaTemplateRepo
	manualJournals *fakeManualJournalRepo
	fixedAssets    *fakeFixedAssetRepo
	disposals      *fakeDisposalRepo
	companies      *fakeCompanyRepo
	taxConfigs     *fakeTaxConfigRepo
}

func newTestScope() *testScope {
	s := &testScope{
		accounts:       newFakeAccountRepo(),
		entries:        &fakeJournalEntryRepo{},
		transactions:   &fakeTransactionRepo{},
		mappings:       &fakeMappingRepo{},
		templates:      &fakeCoaTemplateRepo{},
		manualJournals: newFakeManualJournalRepo(),
		fixedAssets:    newFakeFixedAssetRepo(),
		disposals:      newFakeDisposalRepo(),
		companies:      newFakeCompanyRepo(),
		taxConfigs:     newFakeTaxConfigRepo(),
	}
	s.NoOpTransactionScope = NewNoOpTransactionScope(NoOpScopeParams{
		Accounts:       s.accounts,
		JournalEntries: s.entries,
		Transactions:   s.transactions,
		Mappings:       s.mappings,
		CoaTemplates:   s.templates,
		ManualJournals: s.manualJournals,
		FixedAssets:    s.fixedAssets,
		Disposals:      s.disposals,
		Companies:      s.companies,
		TaxConfigs:     s.taxConfigs,
	})
	return s
}

// seedMappings loads the builtin transaction type mapping table
func (s *testScope) seedMappings() {
	s.mappings.mappings = append(s.mappings.mappings, ledger.BuiltinMappings()...)
}

// seedChart creates accounts from the builtin LLC template for a company
func (s *testScope) seedChart(companyID uuid.UUID) map[string]*ledger.Account {
	byCode := make(map[string]*ledger.Account)
	for _, tmpl := range ledger.BuiltinCoaTemplates() {
		if tmpl.OwnershipForm != company.OwnershipLLC {
			continue
		}
		a, err := ledger.NewAccount(companyID, tmpl.Code, tmpl.Name, tmpl.Type)
		if err != nil {
			panic(err)
		}
		s.accounts.accounts[a.ID] = a
		byCode[a.Code] = a
	}
	return byCode
}
