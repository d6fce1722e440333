package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apporder "github.com/kashpo/storefront/internal/application/order"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
	"github.com/kashpo/storefront/internal/interfaces/http/middleware"
)

// StatusClientClosedRequest is logged when the customer went away before delivery finished
const StatusClientClosedRequest = 499

// OrderHandler submits orders and contact requests to the notification channel
type OrderHandler struct {
	BaseHandler
	checkoutService *apporder.CheckoutService
	submitLimit     gin.HandlerFunc
}

// NewOrderHandler creates a new OrderHandler.
// submitLimit, when non-nil, guards both submission routes.
func NewOrderHandler(checkoutService *apporder.CheckoutService, submitLimit gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService, submitLimit: submitLimit}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	handlers := func(final gin.HandlerFunc) []gin.HandlerFunc {
		if h.submitLimit == nil {
			return []gin.HandlerFunc{final}
		}
		return []gin.HandlerFunc{h.submitLimit, final}
	}
	rg.POST("/orders", handlers(h.Submit)...)
	rg.POST("/contact", handlers(h.Contact)...)
}

// Submit godoc
//
//	POST /api/v1/orders
//
// The body carries either items or the session of a stored cart.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	customer := req.Customer.ToCustomer()
	var (
		result *apporder.CheckoutResult
		err    error
	)
	switch {
	case req.Session != "" && len(req.Items) > 0:
		err = shared.ErrInvalidInput.WithMessage("order must carry either items or a cart session, not both")
	case req.Session != "":
		result, err = h.checkoutService.SubmitCart(ctx, req.Session, customer, locale(c))
	case len(req.Items) > 0:
		result, err = h.checkoutService.Submit(ctx, ToSelections(req.Items), customer, locale(c))
	default:
		err = apporder.ErrEmptyCart
	}
	h.respond(c, result, err)
}

// Contact godoc
//
//	POST /api/v1/contact
func (h *OrderHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.checkoutService.SubmitContact(c.Request.Context(), req.ToCustomer(), locale(c))
	h.respond(c, result, err)
}

// respond answers 200 for a delivered submission and 502 with the result
// attached when the notification channel did not accept it
func (h *OrderHandler) respond(c *gin.Context, result *apporder.CheckoutResult, err error) {
	if errors.Is(err, context.Canceled) {
		logger.L(c.Request.Context()).Info("client closed request before delivery finished")
		c.AbortWithStatus(StatusClientClosedRequest)
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Delivered {
		h.Success(c, result)
		return
	}
	resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeDeliveryFailed, result.Message, middleware.GetRequestID(c))
	resp.Data = result
	c.JSON(http.StatusBadGateway, resp)
}
