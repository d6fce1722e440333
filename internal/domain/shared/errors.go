package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// Errors derived with WithMessage still match their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error carrying a more specific message
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: message,
	}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidQuantity   = NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	ErrBelowMinimumOrder = NewDomainError("BELOW_MINIMUM_ORDER", "Quantity is below the minimum order quantity")
	ErrUnknownProduct    = NewDomainError("UNKNOWN_PRODUCT", "Order references an unknown product")
	ErrInvalidCustomer   = NewDomainError("INVALID_CUSTOMER", "Customer name and phone are required")
	ErrInvalidCatalog    = NewDomainError("INVALID_CATALOG", "Catalog configuration is invalid")
)
