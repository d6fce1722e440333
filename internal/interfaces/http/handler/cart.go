package handler

import (
	"github.com/gin-gonic/gin"
	apporder "github.com/kashpo/storefront/internal/application/order"
)

// CartHandler serves caller-owned carts keyed by an opaque session id
type CartHandler struct {
	BaseHandler
	cartService *apporder.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *apporder.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/cart")
	carts.GET("/:session", h.Get)
	carts.PUT("/:session", h.Put)
	carts.DELETE("/:session", h.Delete)
}

// Get godoc
//
//	GET /api/v1/cart/:session
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.cartService.Get(c.Request.Context(), c.Param("session"), locale(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Put godoc
//
//	PUT /api/v1/cart/:session
func (h *CartHandler) Put(c *gin.Context) {
	var req PutCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	view, err := h.cartService.Put(c.Request.Context(), c.Param("session"), ToSelections(req.Items), locale(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Delete godoc
//
//	DELETE /api/v1/cart/:session
func (h *CartHandler) Delete(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), c.Param("session")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
