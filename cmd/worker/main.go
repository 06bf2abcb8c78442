package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	pgRepo "github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/adapter/persistence/postgres"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/db"
	workerPkg "github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/worker"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/metrics"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/circuitbreaker"
)

func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM sessions LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerMetrics.MustRegister()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("session_ttl", workerConfig.SessionTTL),
		slog.Duration("history_ttl", workerConfig.HistoryTTL),
		slog.Duration("sweep_timeout", workerConfig.SweepTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	guarded := circuitbreaker.NewDBCircuitBreaker(database)
	sessions := pgRepo.NewSessionRepo(guarded)
	history := pgRepo.NewHistoryRepo(guarded)

	startCronWorker(ctx, logger, sessions, history, workerConfig, workerMetrics, healthServer)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and waits for migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

// startCronWorker starts the cron scheduler and runs the maintenance sweep
// periodically. Blocks until the context is cancelled.
func startCronWorker(ctx context.Context, logger *slog.Logger, sessions repository.SessionRepository, history repository.HistoryRepository, cfg *workerPkg.WorkerConfig, workerMetrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runSweep(logger, sessions, history, cfg, workerMetrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))

	<-ctx.Done()

	healthServer.SetReady(false)
	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info("worker stopped")
}

// runSweep executes one maintenance sweep: idle sessions and expired history
// rows are removed concurrently, each against its own TTL cutoff.
func runSweep(logger *slog.Logger, sessions repository.SessionRepository, history repository.HistoryRepository, cfg *workerPkg.WorkerConfig, workerMetrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	logger.Info("sweep started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SweepTimeout)
	defer cancel()

	var sessionsRemoved, historyRemoved int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := sessions.DeleteIdle(gctx, startTime.Add(-cfg.SessionTTL))
		if err != nil {
			return fmt.Errorf("session sweep: %w", err)
		}
		sessionsRemoved = n
		return nil
	})
	g.Go(func() error {
		n, err := history.DeleteIdle(gctx, startTime.Add(-cfg.HistoryTTL))
		if err != nil {
			return fmt.Errorf("history sweep: %w", err)
		}
		historyRemoved = n
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("sweep failed", slog.Any("error", respond.SanitizeError(err)))
		workerMetrics.RecordSweepRun("failure")
		workerMetrics.RecordSweepDuration(time.Since(startTime).Seconds())
		return
	}

	workerMetrics.RecordSweepRun("success")
	workerMetrics.RecordSweepDuration(time.Since(startTime).Seconds())
	workerMetrics.RecordLastSuccess()
	metrics.RecordSessionsExpired(sessionsRemoved)
	metrics.RecordHistorySwept(historyRemoved)

	logger.Info("sweep completed",
		slog.Int64("sessions_removed", sessionsRemoved),
		slog.Int64("history_removed", historyRemoved),
		slog.Duration("duration", time.Since(startTime)),
	)
}
