package payments

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"go-commerce/pkg/errors"
)

// ErrAmountNotPositive is returned when a payment amount is zero or negative
var ErrAmountNotPositive = errors.NewInvalidArgument("amount must be positive", nil)

// Logger is the capability the payment processor needs for observing
// payment attempts. Implementations must not fail.
type Logger interface {
	// Info records an informational event
	Info(message string)

	// Error records a failure together with its cause
	Error(message string, err error)
}

// Processor validates payment methods and processes payment amounts
type Processor interface {
	// ProcessPayment validates the amount and returns it unchanged
	ProcessPayment(amount decimal.Decimal, currency string) (decimal.Decimal, error)

	// ValidatePaymentMethod reports whether the payment method is accepted
	ValidatePaymentMethod(paymentMethod string) bool
}

// CreditCardProcessor is a pass-through payment validator: it performs
// no real payment execution, it only checks the amount and reports the
// attempt to its logger.
type CreditCardProcessor struct {
	log Logger
}

// NewCreditCardProcessor creates a credit card processor. A nil logger
// is replaced with a no-op one.
func NewCreditCardProcessor(log Logger) *CreditCardProcessor {
	if log == nil {
		log = nopLogger{}
	}
	return &CreditCardProcessor{log: log}
}

// ProcessPayment logs the attempt and returns the amount unchanged.
// Amounts that are not strictly positive fail; the failure is logged
// before it is returned.
func (p *CreditCardProcessor) ProcessPayment(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	p.log.Info(fmt.Sprintf("Processing payment of %s %s", amount, currency))

	if !amount.IsPositive() {
		p.log.Error("Payment processing failed", ErrAmountNotPositive)
		return decimal.Zero, ErrAmountNotPositive
	}

	return amount, nil
}

// ValidatePaymentMethod accepts "CreditCard" and "DebitCard",
// case-insensitively. It never fails.
func (p *CreditCardProcessor) ValidatePaymentMethod(paymentMethod string) bool {
	return strings.EqualFold(paymentMethod, "CreditCard") ||
		strings.EqualFold(paymentMethod, "DebitCard")
}

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Error(string, error) {}
