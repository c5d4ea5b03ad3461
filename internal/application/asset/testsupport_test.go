package asset

import (
	"context"

	"github.com/google/uuid"
	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// In-memory fakes for the repositories the disposal workflow touches.

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

func (r *fakeAccountRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ shared.Filter) ([]ledger.Account, error) {
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

func (r *fakeJournalEntryRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ ledger.JournalEntryFilter) ([]ledger.JournalEntry, error) {
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

type fakeFixedAssetRepo struct {
	assets map[uuid.UUID]*asset.FixedAsset
	// versions mirrors the row version a real store would hold, so the
	// optimistic lock can be exercised against shared pointers.
	versions map[uuid.UUID]int
}

func newFakeFixedAssetRepo() *fakeFixedAssetRepo {
	return &fakeFixedAssetRepo{
		assets:   make(map[uuid.UUID]*asset.FixedAsset),
		versions: make(map[uuid.UUID]int),
	}
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
	r.versions[a.ID] = a.Version
	return nil
}

func (r *fakeFixedAssetRepo) SaveWithLock(_ context.Context, a *asset.FixedAsset, expectedVersion int) error {
	if v, ok := r.versions[a.ID]; ok && v != expectedVersion {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "Asset was modified by another transaction")
	}
	r.assets[a.ID] = a
	r.versions[a.ID] = a.Version
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

// testScope wires the fakes behind a NoOpTransactionScope
type testScope struct {
	*appledger.NoOpTransactionScope
	accounts    *fakeAccountRepo
	entries     *fakeJournalEntryRepo
	mappings    *fakeMappingRepo
	fixedAssets *fakeFixedAssetRepo
	disposals   *fakeDisposalRepo
}

func newTestScope() *testScope {
	s := &testScope{
		accounts:    newFakeAccountRepo(),
		entries:     &fakeJournalEntryRepo{},
		mappings:    &fakeMappingRepo{},
		fixedAssets: newFakeFixedAssetRepo(),
		disposals:   newFakeDisposalRepo(),
	}
	s.NoOpTransactionScope = appledger.NewNoOpTransactionScope(appledger.NoOpScopeParams{
		Accounts:       s.accounts,
		JournalEntries: s.entries,
		Mappings:       s.mappings,
		FixedAssets:    s.fixedAssets,
		Disposals:      s.disposals,
	})
	return s
}

func (s *testScope) seedMappings() {
	s.mappings.mappings = append(s.mappings.mappings, ledger.BuiltinMappings()...)
}

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
