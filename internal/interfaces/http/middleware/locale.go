package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
)

const (
	// LocaleKey is the gin context key of the negotiated locale
	LocaleKey = "locale"
	// LocaleQueryParam overrides Accept-Language when it names a supported locale
	LocaleQueryParam = "lang"
)

// Locale negotiates the response locale: the lang query parameter when it is
// supported, then the Accept-Language header, then fallback.
// The result is stored in the gin context and in the request context for logging.
func Locale(fallback i18n.Locale) gin.HandlerFunc {
	if !fallback.IsValid() {
		fallback = i18n.DefaultLocale
	}

	return func(c *gin.Context) {
		locale := negotiateLocale(c, fallback)
		c.Set(LocaleKey, locale)
		c.Request = c.Request.WithContext(logger.WithLocale(c.Request.Context(), locale.String()))
		c.Header("Content-Language", locale.String())
		c.Next()
	}
}

func negotiateLocale(c *gin.Context, fallback i18n.Locale) i18n.Locale {
	if lang := c.Query(LocaleQueryParam); lang != "" {
		if locale, ok := i18n.ParseLocale(lang); ok {
			return locale
		}
	}
	if locale, ok := i18n.NegotiateAcceptLanguage(c.GetHeader("Accept-Language")); ok {
		return locale
	}
	return fallback
}

// GetLocale returns the negotiated locale, or the default locale outside the Locale middleware
func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}

// abortWithCode ends the request with the error envelope for code, localized
func abortWithCode(c *gin.Context, code string) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(
		code,
		dto.LocalizedMessage(code, GetLocale(c)),
		GetRequestID(c),
	))
}
