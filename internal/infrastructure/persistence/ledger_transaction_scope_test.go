package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()
	companyID := uuid.New()

	err := scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		account, err := ledger.NewAccount(companyID, ledger.CodeBank, "Bank Account", ledger.AccountTypeAsset)
		if err != nil {
			return err
		}
		return repos.AccountRepo().Save(ctx, account)
	})
	require.NoError(t, err)

	count, err := NewGormAccountRepository(db).CountForCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()
	companyID := uuid.New()

	err := scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		account, err := ledger.NewAccount(companyID, ledger.CodeBank, "Bank Account", ledger.AccountTypeAsset)
		if err != nil {
			return err
		}
		if err := repos.AccountRepo().Save(ctx, account); err != nil {
			return err
		}
		return shared.NewDomainError("MAPPING_NOT_RESOLVED", "No active mapping for transaction type")
	})
	require.Error(t, err)

	// The write inside the failed scope must not be visible.
	count, err := NewGormAccountRepository(db).CountForCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
