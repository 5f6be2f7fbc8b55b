package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"cardtracker.app/api/common/id"
	"cardtracker.app/api/common/logger"
	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/common/otel"
	"cardtracker.app/api/core/config"
	"cardtracker.app/api/core/db"
	"cardtracker.app/api/internal/cache"
	"cardtracker.app/api/internal/http/middleware"
	httprouter "cardtracker.app/api/internal/http/router"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/store"
	"cardtracker.app/api/internal/trello"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		var missing *config.MissingCredentialError
		if errors.As(err, &missing) {
			slog.ErrorContext(ctx, "trello credentials not configured", "credential", missing.Name)
		} else {
			slog.ErrorContext(ctx, "failed to load config", "error", err)
		}
		os.Exit(1)
	}

	// OTel must init before logger (logger bridges to the OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "card tracker starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.SnowflakeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	lookupCache := setupCache(ctx, cfg.Cache)
	defer lookupCache.Close()

	recorder := metrics.New()

	client, err := trello.NewClient(cfg.Trello, trello.WithMetrics(recorder))
	if err != nil {
		slog.ErrorContext(ctx, "failed to create trello client", "error", err)
		os.Exit(1)
	}

	services := service.NewServices(service.ServicesConfig{
		Stores:   store.NewStores(database.Queries()),
		TxRunner: service.NewTxRunner(database),
		Trello:   trello.NewCachedAPI(client, lookupCache, cfg.Cache.TTL),
		Metrics:  recorder,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, recorder)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// setupCache connects to Redis when configured. Lookups still work without it,
// they just go to Trello every time.
func setupCache(ctx context.Context, cfg config.CacheConfig) cache.Cache {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "lookup cache disabled (no redis url configured)")
		return cache.Nop()
	}

	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		slog.WarnContext(ctx, "redis unavailable, lookup cache disabled", "error", err)
		return cache.Nop()
	}

	slog.InfoContext(ctx, "redis connected", "ttl", cfg.TTL)
	return cache.NewRedis(client, "cardtracker:", slog.Default())
}

func setupRouter(cfg config.Config, services *service.Services, recorder *metrics.Recorder) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(recorder))
	router.Use(middleware.CORS())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		PublicURL: cfg.PublicURL,
		Metrics:   recorder,
	})

	return router
}

const banner = `
  ___              _   _____             _
 / __|__ _ _ _ __| | |_   _| _ __ _ __| |_____ _ _
| (__/ _' | '_/ _' |   | || '_/ _' / _| / / -_) '_|
 \___\__,_|_| \__,_|   |_||_| \__,_\__|_\_\___|_|
`
