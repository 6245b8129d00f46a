package domain

import (
	"fmt"

	"go-commerce/pkg/errors"
)

// Domain-specific errors
var (
	ErrFirstNameEmpty     = errors.NewInvalidArgument("first name cannot be empty", nil)
	ErrLastNameEmpty      = errors.NewInvalidArgument("last name cannot be empty", nil)
	ErrEmailInvalid       = errors.NewInvalidArgument("invalid email format", nil)
	ErrOrderRequired      = errors.NewInvalidArgument("order is required", nil)
	ErrOrderLimitExceeded = errors.NewInvalidOperation(fmt.Sprintf("maximum %d orders per day exceeded", MaxOrdersPerDay))
)

// NewUnknownMembershipLevel creates a validation error for an
// unrecognized membership level value
func NewUnknownMembershipLevel(value string) error {
	return errors.NewInvalidArgument("unknown membership level", map[string]interface{}{
		"membership_level": value,
	})
}

// NewCustomerNotFound creates a not found error with the customer ID
func NewCustomerNotFound(id uint) error {
	return errors.NewNotFound("customer", id)
}
