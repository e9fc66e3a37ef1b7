package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httpAdapter "github.com/Sameer-B786/portfolio/adapters/http"
	"github.com/Sameer-B786/portfolio/adapters/persistence"
	authUC "github.com/Sameer-B786/portfolio/internal/application/usecase/auth"
	"github.com/Sameer-B786/portfolio/internal/application/usecase/content"
	mediaUC "github.com/Sameer-B786/portfolio/internal/application/usecase/media"
	"github.com/Sameer-B786/portfolio/internal/config"
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/auth"
	"github.com/Sameer-B786/portfolio/pkg/logger"
	"github.com/Sameer-B786/portfolio/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Portfolio Content Server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Durable backend
	var backend persistence.Backend
	switch cfg.Storage.Driver {
	case "sqlite":
		sqliteBackend, err := persistence.NewSQLiteBackend(cfg.Storage.DBPath)
		if err != nil {
			appLogger.Fatal("cannot open sqlite storage", err)
		}
		defer sqliteBackend.Close()
		backend = sqliteBackend
	default:
		fileBackend, err := persistence.NewFileBackend(cfg.Storage.Dir)
		if err != nil {
			appLogger.Fatal("cannot open file storage", err)
		}
		backend = fileBackend
	}

	// Stores
	store := persistence.NewContentStore(backend, appLogger)
	themeStore := persistence.NewThemeStore(backend, appLogger)
	sessionStore := persistence.NewSessionStore(backend, appLogger)

	// Load once at startup; any prior state replaces the defaults.
	_, report := store.Load(context.Background())
	if report.FromDefaults {
		appLogger.Info("no usable prior state, starting from defaults", zap.Error(report.Cause))
	}
	store.Subscribe(func(m *portfolio.PortfolioModel) {
		appLogger.Debug("committed model republished", zap.Int("projects", len(m.Projects)))
	})

	// Editing core
	ids := portfolio.NewIDGenerator()
	editSession := content.NewEditSession(store, appLogger, cfg.Editor.Autosave)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go editSession.DrainCommits(ctx, func(ev content.CommitEvent) {
		appLogger.Debug("edit session committed", zap.Time("at", ev.At))
	})

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(cfg.Auth.OwnerEmail, cfg.Auth.OwnerPasswordHash, jwtSvc, sessionStore, appLogger)
	ingestUseCase := mediaUC.NewIngestUseCase(editSession, cfg.Media.MaxUploadBytes, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	contentHandler := httpAdapter.NewContentHandler(editSession, store, ids, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(ingestUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(store, themeStore, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		AuthHandler:      authHandler,
		ContentHandler:   contentHandler,
		MediaHandler:     mediaHandler,
		PortfolioHandler: portfolioHandler,
		JWTService:       jwtSvc,
		Sessions:         sessionStore,
		Logger:           appLogger,
	})

	appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("storage", cfg.Storage.Driver))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
