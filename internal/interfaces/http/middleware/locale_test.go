package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	r := gin.New()
	r.Use(Locale(i18n.LocaleRU))
	r.GET("/test", func(c *gin.Context) {
		assert.Equal(t, GetLocale(c).String(), logger.GetLocale(c.Request.Context()))
		c.String(http.StatusOK, GetLocale(c).String())
	})

	tests := []struct {
		name   string
		path   string
		header string
		want   string
	}{
		{"default", "/test", "", "ru"},
		{"query wins", "/test?lang=uz", "ru-RU,ru;q=0.9", "uz"},
		{"query tag with region", "/test?lang=uz-Latn-UZ", "", "uz"},
		{"unsupported query falls back to header", "/test?lang=en", "uz", "uz"},
		{"accept-language", "/test", "uz-UZ,uz;q=0.9,en;q=0.5", "uz"},
		{"accept-language weights", "/test", "en;q=1.0, ru;q=0.8, uz;q=0.5", "ru"},
		{"garbage header", "/test", ";;;", "ru"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.header != "" {
				header["Accept-Language"] = tt.header
			}
			w := serve(r, http.MethodGet, tt.path, header)
			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.want, w.Header().Get("Content-Language"))
		})
	}
}

func TestLocale_UnmatchedHeaderUsesFallback(t *testing.T) {
	r := gin.New()
	r.Use(Locale(i18n.LocaleUZ))
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, GetLocale(c).String()) })

	w := serve(r, http.MethodGet, "/test", map[string]string{"Accept-Language": "ja-JP,en;q=0.8"})
	assert.Equal(t, "uz", w.Body.String())

	w = serve(r, http.MethodGet, "/test", map[string]string{"Accept-Language": "ru"})
	assert.Equal(t, "ru", w.Body.String())
}

func TestLocale_InvalidFallback(t *testing.T) {
	r := gin.New()
	r.Use(Locale(i18n.Locale("en")))
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, GetLocale(c).String()) })

	assert.Equal(t, i18n.DefaultLocale.String(), serve(r, http.MethodGet, "/test", nil).Body.String())
}

func TestGetLocale_OutsideMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, i18n.DefaultLocale, GetLocale(c))
}
