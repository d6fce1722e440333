// Package handler holds the storefront HTTP handlers.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
	"github.com/kashpo/storefront/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorWithCode sends an error response with the localized message for code,
// deriving the status code from it
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(
		code,
		dto.LocalizedMessage(code, locale(c)),
		middleware.GetRequestID(c),
	))
}

// BindError answers 400 for a request that failed binding
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleError converts domain errors to HTTP responses.
// The message shown is the localized text for the error code; the domain
// message is only logged. Unknown errors are logged and answered with 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	log := logger.L(c.Request.Context()).With(zap.String("route", c.FullPath()))

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		log.Error("request failed", zap.Error(err))
		h.ErrorWithCode(c, dto.ErrCodeInternal)
		return
	}

	code := domainErr.Code
	status := dto.GetHTTPStatus(code)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("code", code), zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("code", code), zap.Error(err))
	}

	resp := dto.NewErrorResponseWithRequestID(code, dto.LocalizedMessage(code, locale(c)), middleware.GetRequestID(c))
	var below *pricing.BelowMinimumError
	if errors.As(err, &below) {
		resp.Data = gin.H{"product_id": below.ProductID, "minimum_quantity": below.Minimum}
	}
	c.JSON(status, resp)
}

func locale(c *gin.Context) i18n.Locale {
	return middleware.GetLocale(c)
}
