package models

import "errors"

// Validation error codes
const (
	CodeInvalidPrice        = "INVALID_PRICE"
	CodeInvalidName         = "INVALID_NAME"
	CodeMenuGroupNotFound   = "MENU_GROUP_NOT_FOUND"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeMenuPriceTooHigh    = "MENU_PRICE_EXCEEDS_PRODUCTS"
	CodeMenuNotFound        = "MENU_NOT_FOUND"
	CodeEmptyOrderLineItems = "EMPTY_ORDER_LINE_ITEMS"
	CodeOrderTableNotFound  = "ORDER_TABLE_NOT_FOUND"
	CodeOrderTableEmpty     = "ORDER_TABLE_EMPTY"
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodeInvalidOrderStatus  = "INVALID_ORDER_STATUS"
	CodeTableGrouped        = "ORDER_TABLE_GROUPED"
	CodeTableNotEmpty       = "ORDER_TABLE_NOT_EMPTY"
	CodeNegativeGuests      = "NEGATIVE_NUMBER_OF_GUESTS"
	CodeTableGroupTooSmall  = "TABLE_GROUP_TOO_SMALL"
	CodeTableGroupNotFound  = "TABLE_GROUP_NOT_FOUND"
	CodeTableHasOpenOrders  = "ORDER_TABLE_HAS_OPEN_ORDERS"
)

// ValidationError is the single failure kind raised by entity methods and
// application services when a request violates a domain rule
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError unwraps err into a ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
