package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/common/pagination"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
	memRepo "github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/adapter/persistence/memory"
	pgRepo "github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/adapter/persistence/postgres"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/catalog"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/db"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/summarizer"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/logging"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/metrics"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/tracing"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/circuitbreaker"
	pkgconfig "github.com/kirillmaiorovf-lgtm/movie-bot/pkg/config"

	blurbUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/blurb"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
	historyUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/history"

	hhttp "github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http"
	hauth "github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/auth"
	hbrowse "github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/browse"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/requestid"
	authservice "github.com/kirillmaiorovf-lgtm/movie-bot/internal/service/auth"
)

func main() {
	logger := initLogger()

	shutdownTracing := tracing.Setup()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	securityConfig := loadSecurityConfig(logger)
	authService, err := authservice.NewService(securityConfig)
	if err != nil {
		logger.Error("auth service initialization failed", slog.Any("error", err))
		os.Exit(1)
	}

	// DATABASE_URL selects the session store: postgres when set, in-memory
	// otherwise. The in-memory mode is for local runs and tests only.
	var database *sql.DB
	var sessions repository.SessionRepository
	var history repository.HistoryRepository
	if os.Getenv("DATABASE_URL") != "" {
		database = initDatabase(logger)
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
		guarded := circuitbreaker.NewDBCircuitBreaker(database)
		sessions = pgRepo.NewSessionRepo(guarded)
		history = pgRepo.NewHistoryRepo(guarded)
		logger.Info("using postgres session store")
	} else {
		sessions = memRepo.NewSessionRepo()
		history = memRepo.NewHistoryRepo()
		logger.Warn("DATABASE_URL not set, using in-memory stores; state is lost on restart")
	}

	version := getVersion()
	handler := setupServer(logger, database, version, authService, sessions, history)

	runServer(logger, database, handler, version)
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSecurityConfig loads the security configuration from the file named by
// SECURITY_CONFIG_FILE, or falls back to the built-in defaults.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_FILE")
	if path == "" {
		return config.DefaultSecurityConfig()
	}
	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security configuration loaded", slog.String("path", path))
	return cfg
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the services and returns the HTTP handler with all
// routes and middleware applied.
func setupServer(logger *slog.Logger, database *sql.DB, version string, authService *authservice.Service, sessions repository.SessionRepository, historyRepo repository.HistoryRepository) http.Handler {
	menu, err := config.LoadGenres()
	if err != nil {
		logger.Error("failed to load genre menu", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("genre menu loaded", slog.Int("genres", menu.Len()))

	paginationCfg := pagination.LoadFromEnv()
	catalogClient := catalog.NewClient(catalog.LoadConfigFromEnv(paginationCfg.PageSize))
	if os.Getenv("KINOPOISK_API_KEY") == "" {
		logger.Warn("KINOPOISK_API_KEY not set, catalog searches will come back empty")
	}

	historySvc := historyUC.NewService(historyRepo, historyUC.CapFromEnv())

	browseSvc := browseUC.NewService(sessions, catalog.NewPageSource(catalogClient), historySvc, paginationCfg.PageSize)

	generator, err := summarizer.NewFromEnv()
	if err != nil {
		logger.Error("failed to initialize blurb generator", slog.Any("error", err))
		os.Exit(1)
	}
	browseSvc.Blurbs = blurbUC.NewService(generator)

	mux := http.NewServeMux()

	// Auth token issuance gets its own tight rate limit.
	authLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authService)))

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /healthz/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /healthz/live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hbrowse.Register(mux, browseSvc, historySvc, menu)

	return applyMiddleware(logger, mux, authService)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: request ID, tracing, rate limit, input validation,
// recovery, logging, body limit, timeout, metrics, authentication.
// Authentication sits innermost so rejected requests are still traced and
// counted; it bypasses the configured public endpoints itself.
func applyMiddleware(logger *slog.Logger, handler http.Handler, authService *authservice.Service) http.Handler {
	globalLimiter := hhttp.NewRateLimiter(rateLimitFromEnv(logger))

	chain := hauth.Authz(authService)(handler)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = globalLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// rateLimitFromEnv reads the global per-IP rate limit. Defaults to 100
// requests per minute.
func rateLimitFromEnv(logger *slog.Logger) (int, time.Duration) {
	limit := pkgconfig.GetEnvInt("RATE_LIMIT", 100)
	if limit <= 0 {
		logger.Warn("RATE_LIMIT must be positive, using default", slog.Int("value", limit))
		limit = 100
	}

	window := pkgconfig.GetEnvDuration("RATE_WINDOW", time.Minute)
	if err := pkgconfig.ValidatePositiveDuration(window); err != nil {
		logger.Warn("RATE_WINDOW must be positive, using default", slog.Duration("value", window))
		window = time.Minute
	}

	return limit, window
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, database *sql.DB, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if database != nil {
		go collectDBStats(ctx, database)
	}

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// collectDBStats periodically exports connection pool gauges.
func collectDBStats(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := database.Stats()
			metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}
