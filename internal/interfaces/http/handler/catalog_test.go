package handler

import (
	"net/http"
	"testing"

	appcatalog "github.com/kashpo/storefront/internal/application/catalog"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_List(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name    string
		path    string
		wantLen int
		wantID  string
	}{
		{"all", "/api/v1/catalog/products", 8, "container-10L-classic"},
		{"category", "/api/v1/catalog/products?category=fiber", 2, "rattan-fiber"},
		{"popular", "/api/v1/catalog/products?popular=true", 3, "container-10L-classic"},
		{"search in another locale", "/api/v1/catalog/products?q=ROTANG&lang=ru", 2, "rattan-fiber"},
		{"search without hits", "/api/v1/catalog/products?q=teapot", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := srv.do(t, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.True(t, resp.Success)

			var items []appcatalog.ProductSummaryResponse
			decodeData(t, resp, &items)
			require.Len(t, items, tt.wantLen)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, items[0].ID)
			}
		})
	}
}

func TestCatalogHandler_List_Localized(t *testing.T) {
	srv := newTestServer(t, nil)

	_, ru := srv.do(t, http.MethodGet, "/api/v1/catalog/products?category=fiber", "")
	_, uz := srv.do(t, http.MethodGet, "/api/v1/catalog/products?category=fiber&lang=uz", "")

	var ruItems, uzItems []appcatalog.ProductSummaryResponse
	decodeData(t, ru, &ruItems)
	decodeData(t, uz, &uzItems)
	require.NotEmpty(t, ruItems)
	assert.NotEqual(t, ruItems[0].Name, uzItems[0].Name)
	assert.Contains(t, ruItems[0].PriceText, "сум")
	assert.Contains(t, uzItems[0].PriceText, "so'm")
}

func TestCatalogHandler_List_InvalidCategory(t *testing.T) {
	srv := newTestServer(t, nil)

	w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products?category=teapots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "category", resp.Error.Details[0].Field)
}

func TestCatalogHandler_Get(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("variant and image", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber?variant=walnut&image=0&lang=uz", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var detail appcatalog.ProductDetailResponse
		decodeData(t, resp, &detail)
		assert.Equal(t, "walnut", detail.VariantID)
		assert.Equal(t, "Yong'oq", detail.VariantName)
		assert.Equal(t, "/images/fiber/walnut-1.jpg", detail.Image)
		assert.True(t, detail.MinimumOrder)
		assert.Equal(t, int64(5), detail.Quote.Quantity)
	})

	t.Run("unknown variant and image index resolve to defaults", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber?variant=purple&image=99", "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail appcatalog.ProductDetailResponse
		decodeData(t, resp, &detail)
		assert.Equal(t, "natural", detail.VariantID)
		assert.Equal(t, "/images/fiber/natural-2.jpg", detail.Image)
		assert.Equal(t, 1, detail.ImageIndex)
	})

	t.Run("unknown product", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/ghost?lang=uz", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeProductNotFound, resp.Error.Code)
		assert.Equal(t, "Mahsulot topilmadi.", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.RequestID)
	})
}

func TestCatalogHandler_Quote(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("container", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/container-10L-classic/quote?quantity=2", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote QuoteResponse
		decodeData(t, resp, &quote)
		assert.Equal(t, int64(2), quote.Quantity)
		assert.Equal(t, int64(374000), quote.Total.Int64())
		assert.NotEmpty(t, quote.TotalText)
		assert.NotEmpty(t, quote.QuantityText)
	})

	t.Run("zero quantity quotes the minimum", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber/quote", "")
		require.Equal(t, http.StatusOK, w.Code)

		var quote QuoteResponse
		decodeData(t, resp, &quote)
		assert.Equal(t, int64(5), quote.Quantity)
		assert.Equal(t, int64(180000), quote.Total.Int64())
	})

	t.Run("below minimum carries the minimum", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber/quote?quantity=2", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeBelowMinimumOrder, resp.Error.Code)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "rattan-fiber", data["product_id"])
		assert.EqualValues(t, 5, data["minimum_quantity"])
	})

	t.Run("negative quantity", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber/quote?quantity=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("not a number", func(t *testing.T) {
		w, _ := srv.do(t, http.MethodGet, "/api/v1/catalog/products/rattan-fiber/quote?quantity=lots", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		w, resp := srv.do(t, http.MethodGet, "/api/v1/catalog/products/ghost/quote?quantity=1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeProductNotFound, resp.Error.Code)
	})
}
