package infrastructure

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-commerce/internal/payments"
	"go-commerce/pkg/errors"
	"go-commerce/pkg/middleware"
)

// HTTPHandler handles HTTP requests for payments
type HTTPHandler struct {
	processor payments.Processor
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(processor payments.Processor) *HTTPHandler {
	return &HTTPHandler{processor: processor}
}

// RegisterRoutes registers the payment routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/payments")
	{
		group.POST("", h.ProcessPayment)
		group.GET("/methods/:method", h.ValidateMethod)
	}
}

// ProcessPaymentRequest is the request body for processing a payment
type ProcessPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
}

// ProcessPaymentResponse is the response body for a processed payment
type ProcessPaymentResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

// ProcessPayment handles POST /payments
func (h *HTTPHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidArgument("invalid request body", err.Error()))
		return
	}

	if !h.processor.ValidatePaymentMethod(req.PaymentMethod) {
		c.Error(errors.NewInvalidArgument("unsupported payment method", map[string]interface{}{
			"payment_method": req.PaymentMethod,
		}))
		return
	}

	amount, err := h.processor.ProcessPayment(req.Amount, req.Currency)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ProcessPaymentResponse{
			Amount:   amount,
			Currency: req.Currency,
			Status:   "processed",
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ValidateMethod handles GET /payments/methods/:method
func (h *HTTPHandler) ValidateMethod(c *gin.Context) {
	method := c.Param("method")

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"payment_method": method,
			"valid":          h.processor.ValidatePaymentMethod(method),
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}
