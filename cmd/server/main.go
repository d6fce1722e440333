package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/kashpo/storefront/internal/application/catalog"
	orderapp "github.com/kashpo/storefront/internal/application/order"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
	"github.com/kashpo/storefront/internal/infrastructure/cache"
	"github.com/kashpo/storefront/internal/infrastructure/config"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/infrastructure/notification"
	"github.com/kashpo/storefront/internal/infrastructure/persistence"
	"github.com/kashpo/storefront/internal/infrastructure/phone"
	"github.com/kashpo/storefront/internal/infrastructure/telemetry"
	"github.com/kashpo/storefront/internal/interfaces/http/handler"
	"github.com/kashpo/storefront/internal/interfaces/http/middleware"
	"github.com/kashpo/storefront/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logCfg := logger.ConfigForEnvironment(cfg.App.Env)
	logCfg.Level = cfg.Log.Level
	logCfg.Output = cfg.Log.Output
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Error("Error shutting down tracing", zap.Error(err))
		}
	}()

	// Key-value store holding carts and the catalog document
	store, err := cache.NewKVStoreFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.Redis.RequireRedis),
	).CreateStore()
	if err != nil {
		log.Fatal("Failed to create key-value store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing key-value store", zap.Error(err))
		}
	}()

	// Pricing and catalog
	rules := pricing.DefaultRules()
	rules.Currency = valueobject.Currency(strings.ToUpper(cfg.Catalog.Currency))
	engine, err := pricing.NewEngine(rules)
	if err != nil {
		log.Fatal("Invalid price rules", zap.Error(err))
	}

	repo, err := persistence.NewCatalogLoader(store, cfg.Catalog.StorageKey,
		persistence.WithSeed(persistence.SeedCatalog),
		persistence.WithChecker(engine),
		persistence.WithLoaderLogger(log),
	).Load(context.Background())
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	log.Info("Catalog loaded", zap.Int("products", repo.Len()))

	// Notification gateway
	gateway := newGateway(cfg, log)

	// Application services
	catalogService := catalogapp.NewCatalogService(repo, engine,
		catalogapp.WithSearchDebounce(cfg.Catalog.SearchDebounce),
	)
	cartService := orderapp.NewCartService(store, repo, engine)
	checkoutService := orderapp.NewCheckoutService(
		orderapp.NewComposer(repo, engine), gateway, cartService, log)

	// Submission rate limiting
	var submitLimit gin.HandlerFunc
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Close()
		submitLimit = middleware.RateLimit(limiter)
	}

	// HTTP engine
	defaultLocale, _ := i18n.ParseLocale(cfg.Catalog.DefaultLocale)
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	ginEngine, err := router.NewEngine(router.EngineConfig{
		DefaultLocale: defaultLocale,
		MaxBodySize:   cfg.HTTP.MaxBodySize,
		CORS:          corsCfg,
		Security:      middleware.DefaultSecurityConfig(),
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		TrustedProxies: cfg.HTTP.TrustedProxies,
	}, log)
	if err != nil {
		log.Fatal("Failed to create HTTP engine", zap.Error(err))
	}

	ginEngine.GET(router.HealthPath, handler.NewHealthHandler(store, repo.Len()).Health)

	router.NewRouter(ginEngine).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(checkoutService, submitLimit)).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// newGateway returns the HTTP notification gateway. Outside production an
// unconfigured endpoint is tolerated: submissions are logged and reported as not delivered.
func newGateway(cfg *config.Config, log *zap.Logger) order.Gateway {
	gateway, err := notification.NewHTTPGateway(notification.Config{
		BaseURL: cfg.Notification.BaseURL,
		Token:   cfg.Notification.Token,
		Timeout: cfg.Notification.Timeout,
	}, notification.WithLogger(log))
	if err == nil {
		return gateway
	}
	if cfg.App.Env == "production" {
		log.Fatal("Invalid notification configuration", zap.Error(err))
	}

	log.Warn("Order notifications disabled", zap.Error(err))
	return order.GatewayFunc(func(ctx context.Context, payload *order.Payload) bool {
		logger.L(ctx).Warn("Order notification not sent: endpoint not configured",
			zap.Int("items", len(payload.Items)),
			zap.Bool("contact", payload.IsContact()),
			zap.String("phone", phone.Mask(payload.CustomerInfo.Phone)),
		)
		return false
	})
}
