package persistence

import (
	"testing"

	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&company.Company{},
		&company.TaxConfig{},
		&ledger.Account{},
		&ledger.Transaction{},
		&ledger.JournalEntry{},
		&ledger.LedgerPosting{},
		&ledger.TransactionTypeMapping{},
		&ledger.CoaTemplate{},
		&ledger.ManualJournal{},
		&ledger.ManualJournalLine{},
		&asset.FixedAsset{},
		&asset.Disposal{},
	)
	require.NoError(t, err)
	return db
}
