package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	assetapp "github.com/ledgerza/backend/internal/application/asset"
	companyapp "github.com/ledgerza/backend/internal/application/company"
	ledgerapp "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/infrastructure/persistence"
	"github.com/ledgerza/backend/internal/interfaces/http/dto"
	"github.com/ledgerza/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the full API over an in-memory sqlite database,
// with reference data seeded and auth disabled. Company scope comes
// from the X-Company-ID header, same as a dev deployment.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	log := zap.NewNop()
	mappingRepo := persistence.NewGormMappingRepository(db)
	templateRepo := persistence.NewGormCoaTemplateRepository(db)
	accountRepo := persistence.NewGormAccountRepository(db)
	manualJournalRepo := persistence.NewGormManualJournalRepository(db)
	fixedAssetRepo := persistence.NewGormFixedAssetRepository(db)
	scope := persistence.NewGormTransactionScope(db)

	bootstrap := ledgerapp.NewBootstrapService(mappingRepo, templateRepo, log)
	require.NoError(t, bootstrap.SeedAll(t.Context()))

	posting := ledgerapp.NewPostingService(scope)
	recording := ledgerapp.NewRecordingService(scope, posting, log)
	directory := ledgerapp.NewAccountDirectory(accountRepo)
	journalManager := ledgerapp.NewJournalManagerService(scope, manualJournalRepo, log)
	setup := companyapp.NewSetupService(scope, company.DefaultVATRate, log)
	assets := assetapp.NewAssetService(fixedAssetRepo)
	disposals := assetapp.NewDisposalService(scope, posting, log)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewCompanyHandler(setup))
	r.Register(NewAccountHandler(directory))
	r.Register(NewTransactionHandler(recording))
	r.Register(NewAssetHandler(assets, disposals))
	r.Register(NewJournalHandler(journalManager))
	r.Setup()
	return engine
}

// doJSON performs a request with an optional JSON body and company header
func doJSON(t *testing.T, engine *gin.Engine, method, path, companyID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if companyID != "" {
		req.Header.Set("X-Company-ID", companyID)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals the envelope and returns it
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// setupCompany onboards a company over the API and returns its ID
func setupCompany(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/companies/setup", "", gin.H{
		"name":                    "Ubuntu Traders CC",
		"ownership":               "LLC",
		"fiscal_year_start_month": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	comp := data["company"].(map[string]any)
	return comp["id"].(string)
}
