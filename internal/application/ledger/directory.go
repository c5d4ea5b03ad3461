package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// ResolvedMapping is a transaction type mapping with both account codes
// resolved to concrete accounts in one company's chart.
type ResolvedMapping struct {
	Mapping *ledger.TransactionTypeMapping
	Debit   *ledger.Account
	Credit  *ledger.Account
}

// AccountDirectory resolves account codes and transaction type mappings
// against a company's chart of accounts. Resolution is strict: a missing
// mapping or a code the chart doesn't carry aborts the caller's workflow
// instead of being skipped.
type AccountDirectory struct {
	accountRepo ledger.AccountRepository
}

// NewAccountDirectory creates a new AccountDirectory
func NewAccountDirectory(accountRepo ledger.AccountRepository) *AccountDirectory {
	return &AccountDirectory{accountRepo: accountRepo}
}

// ListAccounts returns a page of the company's chart of accounts
func (d *AccountDirectory) ListAccounts(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[ledger.Account], error) {
	accounts, err := d.accountRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	total, err := d.accountRepo.CountForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(accounts, total, filter.Page, filter.PageSize)
	return &page, nil
}

// GetByCode returns the company's account with the given code
func (d *AccountDirectory) GetByCode(ctx context.Context, companyID uuid.UUID, code string) (*ledger.Account, error) {
	return resolveCode(ctx, d.accountRepo, companyID, code)
}

func resolveCode(ctx context.Context, repo ledger.AccountRepository, companyID uuid.UUID, code string) (*ledger.Account, error) {
	account, err := repo.FindByCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND",
			fmt.Sprintf("Account %s does not exist in this company's chart", code))
	}
	return account, nil
}

// ResolveMapping looks up the active mapping for a transaction type and
// resolves both its account codes against the company's chart. Inside a
// transaction scope the caller passes the scoped repositories.
func ResolveMapping(ctx context.Context, repos TransactionalRepositories, companyID uuid.UUID, txType ledger.TransactionType) (*ResolvedMapping, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("UNKNOWN_TRANSACTION_TYPE",
			fmt.Sprintf("Transaction type %q is not recognised", txType))
	}

	mapping, err := repos.MappingRepo().FindActiveByType(ctx, txType)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, shared.NewDomainError("MAPPING_NOT_RESOLVED",
			fmt.Sprintf("No active mapping for transaction type %s", txType))
	}

	debit, err := resolveCode(ctx, repos.AccountRepo(), companyID, mapping.DebitCode)
	if err != nil {
		return nil, err
	}
	credit, err := resolveCode(ctx, repos.AccountRepo(), companyID, mapping.CreditCode)
	if err != nil {
		return nil, err
	}
	return &ResolvedMapping{Mapping: mapping, Debit: debit, Credit: credit}, nil
}

// ResolveVATAccounts resolves the VAT input and VAT control accounts. A
// chart without them is a hard configuration error: VAT postings are
// never silently skipped.
func ResolveVATAccounts(ctx context.Context, repos TransactionalRepositories, companyID uuid.UUID) (debit, credit *ledger.Account, err error) {
	debit, err = repos.AccountRepo().FindByCode(ctx, companyID, ledger.VATDebitCode)
	if err != nil {
		return nil, nil, err
	}
	credit, err = repos.AccountRepo().FindByCode(ctx, companyID, ledger.VATCreditCode)
	if err != nil {
		return nil, nil, err
	}
	if debit == nil || credit == nil {
		return nil, nil, shared.NewDomainError("VAT_ACCOUNTS_MISSING",
			fmt.Sprintf("Chart is missing VAT accounts %s/%s", ledger.VATDebitCode, ledger.VATCreditCode))
	}
	return debit, credit, nil
}

// ResolveTaxConfig loads the company's tax configuration, falling back
// to the standard rate when the company has none.
func ResolveTaxConfig(ctx context.Context, repos TransactionalRepositories, companyID uuid.UUID) (*company.TaxConfig, error) {
	cfg, err := repos.TaxConfigRepo().FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return company.NewTaxConfig(companyID, company.DefaultVATRate)
	}
	return cfg, nil
}
