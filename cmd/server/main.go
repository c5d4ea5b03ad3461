package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	assetapp "github.com/ledgerza/backend/internal/application/asset"
	companyapp "github.com/ledgerza/backend/internal/application/company"
	ledgerapp "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/infrastructure/auth"
	"github.com/ledgerza/backend/internal/infrastructure/config"
	"github.com/ledgerza/backend/internal/infrastructure/logger"
	"github.com/ledgerza/backend/internal/infrastructure/persistence"
	"github.com/ledgerza/backend/internal/interfaces/http/handler"
	"github.com/ledgerza/backend/internal/interfaces/http/middleware"
	"github.com/ledgerza/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting LedgerZA backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	mappingRepo := persistence.NewGormMappingRepository(db.DB)
	templateRepo := persistence.NewGormCoaTemplateRepository(db.DB)
	manualJournalRepo := persistence.NewGormManualJournalRepository(db.DB)
	fixedAssetRepo := persistence.NewGormFixedAssetRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	postingService := ledgerapp.NewPostingService(scope)
	recordingService := ledgerapp.NewRecordingService(scope, postingService, log)
	bootstrapService := ledgerapp.NewBootstrapService(mappingRepo, templateRepo, log)
	directory := ledgerapp.NewAccountDirectory(accountRepo)
	journalManager := ledgerapp.NewJournalManagerService(scope, manualJournalRepo, log)
	setupService := companyapp.NewSetupService(scope, cfg.Tax.DefaultVATRateDecimal(), log)
	assetService := assetapp.NewAssetService(fixedAssetRepo)
	disposalService := assetapp.NewDisposalService(scope, postingService, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	// Seed global mapping table and chart templates on startup; both
	// seeders are no-ops when rows already exist.
	if err := bootstrapService.SeedAll(context.Background()); err != nil {
		log.Fatal("Failed to seed ledger configuration", zap.Error(err))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	companyHandler := handler.NewCompanyHandler(setupService)
	accountHandler := handler.NewAccountHandler(directory)
	transactionHandler := handler.NewTransactionHandler(recordingService)
	assetHandler := handler.NewAssetHandler(assetService, disposalService)
	journalHandler := handler.NewJournalHandler(journalManager)

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Company scoping comes from JWT claims in production. In other
	// environments requests fall back to the X-Company-ID header.
	if cfg.App.Env == "production" {
		r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService: jwtService,
			SkipPaths: []string{
				"/api/v1/health",
				"/api/v1/system/info",
			},
			Logger: log,
		}))
	} else {
		log.Warn("JWT authentication disabled outside production; company scope comes from X-Company-ID")
	}

	r.Register(systemHandler)
	r.Register(companyHandler)
	r.Register(accountHandler)
	r.Register(transactionHandler)
	r.Register(assetHandler)
	r.Register(journalHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
