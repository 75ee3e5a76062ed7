package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/smartlib/library/internal/assistant"
	"github.com/smartlib/library/internal/auth"
	"github.com/smartlib/library/internal/circulation"
	"github.com/smartlib/library/internal/config"
	"github.com/smartlib/library/internal/database"
	"github.com/smartlib/library/internal/database/catalog"
	"github.com/smartlib/library/internal/database/ledger"
	"github.com/smartlib/library/internal/database/members"
	"github.com/smartlib/library/internal/entities"
	http_controllers "github.com/smartlib/library/internal/http"
	"github.com/smartlib/library/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// snapshotReader adapts the three repositories to the dashboard's
// snapshot interface.
type snapshotReader struct {
	catalog *catalog.Repository
	members *members.Repository
	ledger  *ledger.Repository
}

func (s snapshotReader) Books() ([]entities.Book, error)           { return s.catalog.GetAll() }
func (s snapshotReader) Members() ([]entities.Member, error)       { return s.members.GetAll() }
func (s snapshotReader) Records() ([]entities.BorrowRecord, error) { return s.ledger.GetAll() }

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: corsHandler.Handler(router),
	}

	go func() {
		log.Info().Str("host", cfg.HTTP.Host).Int32("port", cfg.HTTP.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the overdue reporter)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server exiting")
}

// Run wires the whole application and serves it.
func Run(cfg *config.Config, version string) {
	log.Info().Str("version", version).Msg("starting smart library")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	catalogRepo := catalog.NewRepository(db.DB)
	membersRepo := members.NewRepository(db.DB)
	ledgerRepo := ledger.NewRepository(db.DB)

	circulationService := circulation.NewService(
		ledgerRepo,
		circulation.WithLoanPeriodMonths(cfg.Loans.PeriodMonths),
	)

	var answerer assistant.Answerer
	if cfg.Assistant.APIKey != "" {
		answerer = assistant.NewGeminiClient(cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.BaseURL)
	} else {
		log.Warn().Msg("ASSISTANT_API_KEY is not set, assistant will serve the fallback message")
		answerer = assistant.NewUnavailableAnswerer()
	}

	verifier, err := auth.NewVerifier(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up login verifier")
	}

	var reporter *scheduler.OverdueReporter
	if cfg.OverdueReport.Enabled {
		reporter = scheduler.NewOverdueReporter(ledgerRepo)
		if err := reporter.Start(cfg.OverdueReport.Schedule); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.OverdueReport.Schedule).Msg("failed to start overdue reporter")
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Catalog:     catalogRepo,
		Members:     membersRepo,
		Circulation: circulationService,
		Ledger:      ledgerRepo,
		Snapshot: snapshotReader{
			catalog: catalogRepo,
			members: membersRepo,
			ledger:  ledgerRepo,
		},
		Answerer:      answerer,
		LoginVerifier: verifier,
		DB:            db,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if reporter != nil {
			reporter.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
