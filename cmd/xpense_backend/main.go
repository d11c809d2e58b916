package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/XpenseXpress/xpense_backend/internal/core/services"
	"github.com/XpenseXpress/xpense_backend/internal/handlers"
	"github.com/XpenseXpress/xpense_backend/internal/middleware"
	"github.com/XpenseXpress/xpense_backend/internal/repositories/database/pgsql"
	"github.com/XpenseXpress/xpense_backend/pkg/config"
	"github.com/XpenseXpress/xpense_backend/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MinConns: cfg.PoolMinConns,
		MaxConns: cfg.PoolMaxConns,
	})
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitRequests,
	})

	router.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.SecurityHeaders(),
		cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}),
		middleware.RateLimit(rateLimiter),
		middleware.SanitizeRequest(),
	)

	repos := pgsql.NewRepositoryContainer(dbPool, cfg.AcquireTimeout)
	sc := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(router, sc, cfg.Environment)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, draining in-flight requests",
		slog.Duration("grace", cfg.ShutdownGrace))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown after grace period", slog.String("error", err.Error()))
	} else {
		logger.Info("Server stopped cleanly")
	}
}

// runMigrations applies all pending up migrations over a short-lived stdlib
// connection, separate from the application pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if upErr != nil {
		return upErr
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
