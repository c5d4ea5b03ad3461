package company

import (
	"context"

	"github.com/google/uuid"
	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// In-memory fakes for the repositories the setup workflow touches.

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*company.Company)}
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*company.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) FindAll(_ context.Context, _ shared.Filter) ([]company.Company, error) {
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

// testScope wires the fakes behind a NoOpTransactionScope
type testScope struct {
	*appledger.NoOpTransactionScope
	companies  *fakeCompanyRepo
	taxConfigs *fakeTaxConfigRepo
	accounts   *fakeAccountRepo
	templates  *fakeCoaTemplateRepo
}

func newTestScope() *testScope {
	s := &testScope{
		companies:  newFakeCompanyRepo(),
		taxConfigs: newFakeTaxConfigRepo(),
		accounts:   newFakeAccountRepo(),
		templates:  &fakeCoaTemplateRepo{},
	}
	s.NoOpTransactionScope = appledger.NewNoOpTransactionScope(appledger.NoOpScopeParams{
		Accounts:     s.accounts,
		CoaTemplates: s.templates,
		Companies:    s.companies,
		TaxConfigs:   s.taxConfigs,
	})
	return s
}

func (s *testScope) seedTemplates() {
	s.templates.templates = append(s.templates.templates, ledger.BuiltinCoaTemplates()...)
}
