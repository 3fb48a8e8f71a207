package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-currency-converter/internal/config"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/rates"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Converts amounts between USD and other currencies using a static rate table
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, loads the exchange rate table and serves HTTP
// until the context is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Load exchange rates once, before the listener starts
	src, closeSrc, err := newRateSource(ctx, cfg)
	if err != nil {
		return err
	}
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Rates.LoadTimeout)
	table, err := rates.Load(loadCtx, src)
	cancel()
	closeSrc()
	if err != nil {
		return err
	}
	log.Infow("exchange rates loaded", "source", cfg.Rates.Source, "currencies", table.Len())

	// Initialize metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.CurrenciesLoaded.Set(float64(table.Len()))
	}

	// Initialize services
	svc := services.NewLoggingConverter(log, services.NewConversionService(table))

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: newRouter(cfg.App.Version, svc, m, log),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRateSource opens the configured exchange rate source. The returned
// close function releases its connection once the table is loaded.
func newRateSource(ctx context.Context, cfg *config.Config) (rates.Source, func(), error) {
	switch cfg.Rates.Source {
	case config.RatesSourcePostgres:
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return repositories.NewExchangeRatePostgresRepository(db), func() { _ = db.Close() }, nil

	case config.RatesSourceRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return repositories.NewExchangeRateRedisRepository(rdb, cfg.Redis.RatesKey), func() { _ = rdb.Close() }, nil

	default:
		return rates.NewCSVSource(cfg.Rates.CSVPath), func() {}, nil
	}
}

// converter is what the conversion and listing routes need from the service.
type converter interface {
	handlers.Converter
	handlers.CurrencyLister
}

// newRouter wires middlewares and routes. A nil m disables /metrics.
func newRouter(version string, svc converter, m *metrics.Metrics, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	var obs handlers.ConversionObserver
	if m != nil {
		r.Use(middlewares.MetricsMiddleware(m))
		obs = m
	}
	r.Use(middlewares.GetOnly)

	r.Get("/", handlers.NewInfoHandler(version, nil))
	r.Get("/health", handlers.NewHealthHandler(nil))
	r.Get("/convert", handlers.NewConvertHandler(svc, obs, nil))
	r.Get("/currencies", handlers.NewCurrenciesHandler(svc))

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.NotFound(handlers.NewNotFoundHandler())

	return r
}
