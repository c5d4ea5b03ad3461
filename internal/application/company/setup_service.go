package company

import (
	"context"

	"github.com/google/uuid"
	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SetupInput describes a new company to onboard
type SetupInput struct {
	Name                 string
	Ownership            company.OwnershipForm
	Address              string
	FiscalYearStartMonth int
	VATRate              decimal.Decimal
	TaxReference         string
}

// SetupResult is the onboarded company with its seeded chart
type SetupResult struct {
	Company   *company.Company
	TaxConfig *company.TaxConfig
	Accounts  []*ledger.Account
}

// SetupService onboards a company: it creates the company record, its
// tax configuration and its starter chart of accounts from the template
// for its ownership form, all in one transaction. defaultVATRate is the
// deployment-configured rate applied when the request carries none.
type SetupService struct {
	scope          appledger.TransactionScope
	defaultVATRate decimal.Decimal
	logger         *zap.Logger
}

// NewSetupService creates a new SetupService
func NewSetupService(scope appledger.TransactionScope, defaultVATRate decimal.Decimal, logger *zap.Logger) *SetupService {
	return &SetupService{scope: scope, defaultVATRate: defaultVATRate, logger: logger}
}

// SetupCompany creates a company and seeds its chart of accounts
func (s *SetupService) SetupCompany(ctx context.Context, input SetupInput) (*SetupResult, error) {
	var result *SetupResult
	err := s.scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		c, err := company.NewCompany(input.Name, input.Ownership, input.Address, input.FiscalYearStartMonth)
		if err != nil {
			return err
		}
		if err := repos.CompanyRepo().Save(ctx, c); err != nil {
			return err
		}

		rate := input.VATRate
		if rate.IsZero() {
			rate = s.defaultVATRate
		}
		cfg, err := company.NewTaxConfig(c.ID, rate)
		if err != nil {
			return err
		}
		cfg.TaxReference = input.TaxReference
		if err := repos.TaxConfigRepo().Save(ctx, cfg); err != nil {
			return err
		}

		accounts, err := seedChartIn(ctx, repos, c.ID, c.Ownership)
		if err != nil {
			return err
		}

		result = &SetupResult{Company: c, TaxConfig: cfg, Accounts: accounts}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("company set up",
		zap.String("company_id", result.Company.ID.String()),
		zap.String("ownership", result.Company.Ownership.String()),
		zap.Int("accounts", len(result.Accounts)))
	return result, nil
}

// SeedChart seeds the chart of accounts for an existing company. A
// company that already has accounts is left untouched.
func (s *SetupService) SeedChart(ctx context.Context, companyID uuid.UUID) ([]*ledger.Account, error) {
	var accounts []*ledger.Account
	err := s.scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		c, err := repos.CompanyRepo().FindByID(ctx, companyID)
		if err != nil {
			return err
		}
		if c == nil {
			return shared.NewDomainError("COMPANY_NOT_FOUND", "Company does not exist")
		}

		count, err := repos.AccountRepo().CountForCompany(ctx, companyID)
		if err != nil {
			return err
		}
		if count > 0 {
			return shared.NewDomainError("CHART_ALREADY_SEEDED", "Company already has a chart of accounts")
		}

		accounts, err = seedChartIn(ctx, repos, companyID, c.Ownership)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func seedChartIn(ctx context.Context, repos appledger.TransactionalRepositories, companyID uuid.UUID, form company.OwnershipForm) ([]*ledger.Account, error) {
	templates, err := repos.CoaTemplateRepo().FindByOwnershipForm(ctx, form)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, shared.NewDomainError("TEMPLATES_NOT_SEEDED", "No chart templates for this ownership form; run bootstrap seeding first")
	}

	accounts := make([]*ledger.Account, 0, len(templates))
	for _, tpl := range templates {
		account, err := ledger.NewAccount(companyID, tpl.Code, tpl.Name, tpl.Type)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := repos.AccountRepo().SaveAll(ctx, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
