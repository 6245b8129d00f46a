package domain

import "go-commerce/pkg/errors"

// Domain-specific errors
var (
	ErrProductNameEmpty    = errors.NewInvalidArgument("product name cannot be empty", nil)
	ErrQuantityNotPositive = errors.NewInvalidArgument("quantity must be positive", nil)
	ErrUnitPriceNegative   = errors.NewInvalidArgument("unit price cannot be negative", nil)
	ErrNotPending          = errors.NewInvalidOperation("only pending orders can be processed")
)

// NewUnknownStatus creates a validation error for an unrecognized status value
func NewUnknownStatus(value string) error {
	return errors.NewInvalidArgument("unknown order status", map[string]interface{}{
		"status": value,
	})
}

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(id int) error {
	return errors.NewNotFound("order", id)
}
