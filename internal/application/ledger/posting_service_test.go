package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostingFixture(t *testing.T) (*PostingService, *testScope, map[string]*ledger.Account, uuid.UUID) {
	t.Helper()
	scope := newTestScope()
	companyID := uuid.New()
	byCode := scope.seedChart(companyID)
	return NewPostingService(scope), scope, byCode, companyID
}

func TestPostEntry_MovesBalancesBothWays(t *testing.T) {
	svc, scope, byCode, companyID := newPostingFixture(t)

	entry, err := svc.PostEntry(context.Background(), PostEntryInput{
		CompanyID:       companyID,
		Date:            time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DebitAccountID:  byCode[ledger.CodeBank].ID,
		CreditAccountID: byCode[ledger.CodeSalesRevenue].ID,
		Amount:          decimal.NewFromInt(400),
		Memo:            "Counter sale",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	// asset debited up, revenue credited up
	assert.True(t, byCode[ledger.CodeBank].Balance.Equal(decimal.NewFromInt(400)))
	assert.True(t, byCode[ledger.CodeSalesRevenue].Balance.Equal(decimal.NewFromInt(400)))

	require.Len(t, entry.Postings, 2)
	assert.True(t, entry.Postings[0].Debit.Equal(decimal.NewFromInt(400)))
	assert.True(t, entry.Postings[1].Credit.Equal(decimal.NewFromInt(400)))
	assert.Len(t, scope.entries.entries, 1)
}

func TestPostEntry_UnknownAccount(t *testing.T) {
	svc, _, byCode, companyID := newPostingFixture(t)

	_, err := svc.PostEntry(context.Background(), PostEntryInput{
		CompanyID:       companyID,
		Date:            time.Now(),
		DebitAccountID:  uuid.New(),
		CreditAccountID: byCode[ledger.CodeSalesRevenue].ID,
		Amount:          decimal.NewFromInt(10),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", domainErr.Code)
}

func TestPostEntry_CrossCompanyAccountLooksMissing(t *testing.T) {
	svc, scope, byCode, companyID := newPostingFixture(t)
	otherChart := scope.seedChart(uuid.New())

	_, err := svc.PostEntry(context.Background(), PostEntryInput{
		CompanyID:       companyID,
		Date:            time.Now(),
		DebitAccountID:  otherChart[ledger.CodeBank].ID,
		CreditAccountID: byCode[ledger.CodeSalesRevenue].ID,
		Amount:          decimal.NewFromInt(10),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", domainErr.Code)
}

func TestPostEntry_InactiveAccount(t *testing.T) {
	svc, scope, byCode, companyID := newPostingFixture(t)

	dormant, err := ledger.NewAccount(companyID, "9100", "Dormant suspense", ledger.AccountTypeAsset)
	require.NoError(t, err)
	require.NoError(t, dormant.Deactivate())
	scope.accounts.accounts[dormant.ID] = dormant

	_, err = svc.PostEntry(context.Background(), PostEntryInput{
		CompanyID:       companyID,
		Date:            time.Now(),
		DebitAccountID:  dormant.ID,
		CreditAccountID: byCode[ledger.CodeSalesRevenue].ID,
		Amount:          decimal.NewFromInt(10),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INACTIVE_ACCOUNT", domainErr.Code)
}

func TestPostEntry_SameAccountRejected(t *testing.T) {
	svc, scope, byCode, companyID := newPostingFixture(t)

	_, err := svc.PostEntry(context.Background(), PostEntryInput{
		CompanyID:       companyID,
		Date:            time.Now(),
		DebitAccountID:  byCode[ledger.CodeBank].ID,
		CreditAccountID: byCode[ledger.CodeBank].ID,
		Amount:          decimal.NewFromInt(10),
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SAME_ACCOUNT", domainErr.Code)

	assert.True(t, byCode[ledger.CodeBank].Balance.IsZero())
	assert.Empty(t, scope.entries.entries)
}
