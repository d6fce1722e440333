package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Pinger is implemented by key-value stores that can report reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and the state of the key-value store
type HealthHandler struct {
	store        any
	productCount int
	timeout      time.Duration
	now          func() time.Time
}

// NewHealthHandler creates a HealthHandler. store is probed when it implements Pinger.
func NewHealthHandler(store any, productCount int) *HealthHandler {
	return &HealthHandler{
		store:        store,
		productCount: productCount,
		timeout:      2 * time.Second,
		now:          time.Now,
	}
}

// Health godoc
//
//	GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{
		"status":   "healthy",
		"time":     h.now().Format(time.RFC3339),
		"products": h.productCount,
		"store":    "memory",
	}

	pinger, ok := h.store.(Pinger)
	if !ok {
		c.JSON(http.StatusOK, body)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		body["status"] = "unhealthy"
		body["store"] = "error"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["store"] = "ok"
	c.JSON(http.StatusOK, body)
}
