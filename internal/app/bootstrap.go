package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Gunvolt24/restaurant_svc/config"
	"github.com/Gunvolt24/restaurant_svc/internal/kafka"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/internal/repo/postgres"
	rest "github.com/Gunvolt24/restaurant_svc/internal/transport/http"
	"github.com/Gunvolt24/restaurant_svc/internal/usecase"
	"github.com/Gunvolt24/restaurant_svc/pkg/logger"
	"github.com/Gunvolt24/restaurant_svc/pkg/metrics"
	"github.com/Gunvolt24/restaurant_svc/pkg/telemetry"
	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
)

// App - собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger             // логгер
	HTTPServer      *http.Server             // API
	MetricsServer   *http.Server             // отдельный /metrics; nil - только на API-сервере
	Events          ports.DishEventPublisher // nil, если Kafka выключена
	gracefulTimeout time.Duration
}

// Cleanup - функция освобождения ресурсов.
type Cleanup func()

// applyGinMode - режим Gin по строке; неизвестное значение -> debug и предупреждение.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// withCORS - rs/cors поверх gin; пустой список источников отключает CORS.
func withCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "traceparent"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(h)
}

// Bootstrap - собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}
	fail := func(err error) (*App, Cleanup, error) {
		closeAll()
		return nil, func() {}, err
	}

	metrics.MustRegister()

	loc, err := cfg.Schedule.Location()
	if err != nil {
		return fail(fmt.Errorf("schedule timezone: %w", err))
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return fail(err)
		}
		logg.Infof(ctx, "migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, pool.Close)

	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}
	closers = append(closers, func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
	})

	cache, closeCache, err := newRestaurantCache(ctx, cfg, logg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeCache)

	var events ports.DishEventPublisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			RetryInitial: cfg.Kafka.RetryInitial,
			RetryMax:     cfg.Kafka.RetryMax,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
		}, logg)
		events = producer
		logg.Infof(ctx, "dish events enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	// Сборка зависимостей доменного слоя.
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	validator := validate.NewCatalogValidator()

	var lookup ports.RestaurantLookup = restaurantRepo
	if cache != nil {
		lookup = usecase.NewCachedRestaurantLookup(restaurantRepo, cache, logg)
	}
	engine := usecase.NewOrderValidationService(lookup, dishRepo, nil, logg).WithLocation(loc)
	restaurants := usecase.NewRestaurantService(restaurantRepo, cache, logg, validator)
	dishes := usecase.NewDishService(dishRepo, events, logg, validator, nil)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(engine, restaurants, dishes, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           withCORS(router, cfg.HTTP.CORSOrigins),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		Events:          events,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	return app, Cleanup(closeAll), nil
}

// Run - запускает серверы; ждет отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	serve := func(name string, srv *http.Server) {
		a.Logger.Infof(ctx, "%s server starting (addr=%s)", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}

	go serve("http", a.HTTPServer)
	if a.MetricsServer != nil {
		go serve("metrics", a.MetricsServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "background error: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// после остановки HTTP новых событий нет, досылаем буфер writer
	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			a.Logger.Warnf(ctx, "dish events close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
