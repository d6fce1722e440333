package dto

import (
	"net/http"

	"github.com/kashpo/storefront/internal/domain/i18n"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeNotFound is used for unknown routes
	ErrCodeNotFound = "NOT_FOUND"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding rejects a field
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidInput mirrors shared.ErrInvalidInput
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// Catalog and order error codes, identical to the domain error codes
const (
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeVariantNotFound   = "VARIANT_NOT_FOUND"
	ErrCodeUnknownProduct    = "UNKNOWN_PRODUCT"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeBelowMinimumOrder = "BELOW_MINIMUM_ORDER"
	ErrCodeInvalidCustomer   = "INVALID_CUSTOMER"
	ErrCodeInvalidSession    = "INVALID_SESSION"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidCatalog    = "INVALID_CATALOG"
)

// ErrCodeDeliveryFailed is used when the notification channel did not accept an order
const ErrCodeDeliveryFailed = "DELIVERY_FAILED"

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeInvalidCatalog: http.StatusInternalServerError,
	ErrCodeNotFound:       http.StatusNotFound,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidQuantity: http.StatusBadRequest,
	ErrCodeInvalidCustomer: http.StatusBadRequest,
	ErrCodeInvalidSession:  http.StatusBadRequest,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeProductNotFound: http.StatusNotFound,
	ErrCodeVariantNotFound: http.StatusNotFound,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeBelowMinimumOrder: http.StatusUnprocessableEntity,
	ErrCodeUnknownProduct:    http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:         http.StatusUnprocessableEntity,

	ErrCodeDeliveryFailed: http.StatusBadGateway,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

var errorMessageKeys = map[string]string{
	ErrCodeInternal:          i18n.MsgInternal,
	ErrCodeInvalidCatalog:    i18n.MsgInternal,
	ErrCodeNotFound:          i18n.MsgNotFound,
	ErrCodeBadRequest:        i18n.MsgInvalidRequest,
	ErrCodeValidation:        i18n.MsgInvalidRequest,
	ErrCodeInvalidInput:      i18n.MsgInvalidRequest,
	ErrCodeRequestTooLarge:   i18n.MsgRequestTooLarge,
	ErrCodeProductNotFound:   i18n.MsgProductNotFound,
	ErrCodeVariantNotFound:   i18n.MsgVariantNotFound,
	ErrCodeUnknownProduct:    i18n.MsgUnknownProduct,
	ErrCodeInvalidQuantity:   i18n.MsgInvalidQuantity,
	ErrCodeBelowMinimumOrder: i18n.MsgBelowMinimumOrder,
	ErrCodeInvalidCustomer:   i18n.MsgInvalidCustomer,
	ErrCodeInvalidSession:    i18n.MsgInvalidSession,
	ErrCodeEmptyCart:         i18n.MsgEmptyCart,
	ErrCodeDeliveryFailed:    i18n.MsgOrderFailed,
	ErrCodeRateLimited:       i18n.MsgTooManyRequests,
}

// LocalizedMessage returns the customer-facing message for code in locale.
// Unknown codes get the generic internal error message.
func LocalizedMessage(code string, locale i18n.Locale) string {
	key, ok := errorMessageKeys[code]
	if !ok {
		key = i18n.MsgInternal
	}
	return i18n.Message(key, locale)
}
