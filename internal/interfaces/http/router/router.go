// Package router assembles the gin engine and registers the versioned API routes.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
	"github.com/kashpo/storefront/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// HealthPath is served outside the versioned API and never traced
const HealthPath = "/health"

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// EngineConfig configures the middleware stack of NewEngine
type EngineConfig struct {
	DefaultLocale  i18n.Locale
	MaxBodySize    int64
	CORS           middleware.CORSConfig
	Security       middleware.SecurityConfig
	Tracing        middleware.TracingConfig
	TrustedProxies []string
}

// NewEngine builds a gin engine with the storefront middleware stack:
// panic recovery, request ids, tracing, locale negotiation, request logging,
// security headers, CORS and the body size limit. Unknown routes answer with
// the localized NOT_FOUND envelope.
func NewEngine(cfg EngineConfig, log *zap.Logger) (*gin.Engine, error) {
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	tracing := cfg.Tracing
	tracing.SkipPaths = append(tracing.SkipPaths, HealthPath)

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.Tracing(tracing),
		middleware.Locale(cfg.DefaultLocale),
		logger.GinMiddleware(log),
		middleware.SpanEnricher(),
		middleware.SecureWithConfig(cfg.Security),
		middleware.CORSWithConfig(cfg.CORS),
	)
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeNotFound), dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound,
			dto.LocalizedMessage(dto.ErrCodeNotFound, middleware.GetLocale(c)),
			middleware.GetRequestID(c),
		))
	})
	return engine, nil
}
