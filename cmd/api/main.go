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

	"blog-backend/internal/common/pagination"
	hhttp "blog-backend/internal/handler/http"
	hpost "blog-backend/internal/handler/http/post"
	"blog-backend/internal/handler/http/requestid"
	htag "blog-backend/internal/handler/http/tag"
	pgRepo "blog-backend/internal/infra/adapter/persistence/postgres"
	"blog-backend/internal/infra/db"
	"blog-backend/internal/observability/logging"
	"blog-backend/internal/observability/tracing"
	"blog-backend/internal/repository"
	"blog-backend/internal/resilience/circuitbreaker"
	postUC "blog-backend/internal/usecase/post"
	tagUC "blog-backend/internal/usecase/tag"
	"blog-backend/pkg/config"
)

func main() {
	logger := logging.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	components := setupServer(logger, database, version)

	go startGaugeUpdater(ctx, logger, components.PostRepo, components.TagRepo)

	runServer(ctx, logger, components.Handler, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// ServerComponents holds the wired handler plus the repositories the
// background gauge updater polls.
type ServerComponents struct {
	Handler  http.Handler
	PostRepo repository.PostRepository
	TagRepo  repository.TagRepository
}

// setupServer wires repositories, services, routes, and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, version string) *ServerComponents {
	// All repository queries go through the circuit breaker so a dead
	// database fails fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	postRepo := pgRepo.NewPostRepo(breaker)
	tagRepo := pgRepo.NewTagRepo(breaker)

	postSvc := &postUC.Service{Posts: postRepo, Tags: tagRepo}
	tagSvc := &tagUC.Service{Tags: tagRepo}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hpost.Register(mux, postSvc, paginationCfg, logger)
	htag.Register(mux, tagSvc, paginationCfg, logger)

	mux.Handle("/healthz", &hhttp.HealthHandler{DB: database, Version: version, Breaker: breaker})
	mux.Handle("/readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/livez", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return &ServerComponents{
		Handler:  applyMiddleware(logger, mux),
		PostRepo: postRepo,
		TagRepo:  tagRepo,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Rate Limit →
// Recovery → Logging → Timeout → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err := config.ValidatePositiveDuration(requestTimeout); err != nil {
		logger.Error("invalid REQUEST_TIMEOUT", slog.Any("error", err))
		os.Exit(1)
	}

	chain := handler

	// Applied in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if config.GetEnvBool("RATELIMIT_ENABLED", true) {
		limit := config.GetEnvInt("RATELIMIT_LIMIT", 100)
		window := config.GetEnvDuration("RATELIMIT_WINDOW", time.Minute)
		limiter := hhttp.NewRateLimiter(limit, window)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting enabled",
			slog.Int("limit", limit),
			slog.Duration("window", window))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	corsCfg := hhttp.LoadCORSConfig()
	if corsCfg.Enabled() {
		chain = hhttp.CORS(corsCfg)(chain)
		logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))
	}

	return chain
}

// startGaugeUpdater periodically refreshes the post and tag count gauges
// exposed on /metrics.
func startGaugeUpdater(ctx context.Context, logger *slog.Logger, posts repository.PostRepository, tags repository.TagRepository) {
	interval := config.GetEnvDuration("METRICS_REFRESH_INTERVAL", time.Minute)
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refresh := func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if total, err := posts.CountPublished(refreshCtx, repository.PostListQuery{}); err == nil {
			hhttp.UpdatePostsTotal(total)
		} else {
			logger.Debug("failed to refresh post count gauge", slog.Any("error", err))
		}

		if total, err := tags.Count(refreshCtx); err == nil {
			hhttp.UpdateTagsTotal(total)
		} else {
			logger.Debug("failed to refresh tag count gauge", slog.Any("error", err))
		}
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(ctx context.Context, logger *slog.Logger, handler http.Handler, version string) {
	addr := config.GetEnvString("SERVER_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
