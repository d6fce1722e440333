package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/kashpo/storefront/internal/application/catalog"
	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/pricing"
)

// CatalogHandler serves product listings, product pages and quotes
type CatalogHandler struct {
	BaseHandler
	catalogService *appcatalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	products.GET("", h.List)
	products.GET("/:id", h.Get)
	products.GET("/:id/quote", h.Quote)
}

// List godoc
//
//	GET /api/v1/catalog/products?category=&popular=&q=&lang=
func (h *CatalogHandler) List(c *gin.Context) {
	var query ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	products, err := h.catalogService.List(catalog.ProductFilter{
		Category:    catalog.Category(query.Category),
		PopularOnly: query.Popular,
		Query:       query.Q,
	}, locale(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get godoc
//
//	GET /api/v1/catalog/products/:id?variant=&image=&lang=
func (h *CatalogHandler) Get(c *gin.Context) {
	var query GetProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.catalogService.Get(c.Param("id"), query.Variant, query.Image, locale(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Quote godoc
//
//	GET /api/v1/catalog/products/:id/quote?quantity=
func (h *CatalogHandler) Quote(c *gin.Context) {
	var query QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	quote, err := h.catalogService.Quote(c.Param("id"), query.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	loc := locale(c)
	h.Success(c, QuoteResponse{
		Quote:        quote,
		TotalText:    pricing.FormatAmount(quote.Total, loc),
		QuantityText: pricing.FormatQuantity(quote.Quantity, quote.Unit, loc),
	})
}
