package payments

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-commerce/pkg/errors"
)

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	infos  []string
	errs   []string
	causes []error
}

func (l *recordingLogger) Info(message string) {
	l.infos = append(l.infos, message)
}

func (l *recordingLogger) Error(message string, err error) {
	l.errs = append(l.errs, message)
	l.causes = append(l.causes, err)
}

func TestValidatePaymentMethod(t *testing.T) {
	processor := NewCreditCardProcessor(nil)

	tests := []struct {
		method string
		want   bool
	}{
		{"CreditCard", true},
		{"creditcard", true},
		{"CREDITCARD", true},
		{"DebitCard", true},
		{"DEBITCARD", true},
		{"", false},
		{"PayPal", false},
		{"Cash", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, processor.ValidatePaymentMethod(tt.method), "method %q", tt.method)
	}
}

func TestProcessPayment_Success(t *testing.T) {
	log := &recordingLogger{}
	processor := NewCreditCardProcessor(log)

	amount, err := processor.ProcessPayment(decimal.NewFromInt(100), "USD")

	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)), "amount is returned unchanged")

	require.Len(t, log.infos, 1)
	assert.Equal(t, "Processing payment of 100 USD", log.infos[0])
	assert.Empty(t, log.errs)
}

func TestProcessPayment_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.NewFromInt(-5), decimal.Zero} {
		log := &recordingLogger{}
		processor := NewCreditCardProcessor(log)

		_, err := processor.ProcessPayment(amount, "USD")

		require.ErrorIs(t, err, ErrAmountNotPositive)
		assert.True(t, errors.Is(err, errors.CodeInvalidArgument))

		// The failure is logged before it is returned
		require.Len(t, log.errs, 1)
		assert.Equal(t, "Payment processing failed", log.errs[0])
		require.Len(t, log.causes, 1)
		assert.ErrorIs(t, log.causes[0], ErrAmountNotPositive)
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf)

	log.Info("payment attempt")
	log.Error("payment failed", ErrAmountNotPositive)
	log.Error("payment failed without cause", nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "[INFO] "))
	assert.True(t, strings.HasSuffix(lines[0], " - payment attempt"))
	assert.True(t, strings.HasPrefix(lines[1], "[ERROR] "))
	assert.True(t, strings.HasSuffix(lines[1], " - payment failed"))
	assert.Equal(t, "Error: "+ErrAmountNotPositive.Error(), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], " - payment failed without cause"),
		"a nil cause prints no detail line")
}
