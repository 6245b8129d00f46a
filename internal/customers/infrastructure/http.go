package infrastructure

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-commerce/internal/customers/application"
	"go-commerce/internal/customers/domain"
	orders "go-commerce/internal/orders/domain"
	"go-commerce/pkg/errors"
	"go-commerce/pkg/middleware"
)

// HTTPHandler handles HTTP requests for customers and their orders
type HTTPHandler struct {
	useCase *application.CommerceUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.CommerceUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the customer routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.POST("", h.RegisterCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateContact)
		customers.GET("/:id/report", h.GetReport)
		customers.POST("/:id/membership/upgrade", h.UpgradeMembership)
		customers.POST("/:id/orders", h.PlaceOrder)
		customers.GET("/:id/orders", h.GetOrdersByStatus)
		customers.POST("/:id/orders/:order_id/process", h.ProcessOrder)
		customers.GET("/:id/orders/:order_id/summary", h.GetOrderSummary)
	}
}

// RegisterCustomerRequest is the request body for registering a customer
type RegisterCustomerRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	MembershipLevel string `json:"membership_level"`
}

// UpdateContactRequest is the request body for updating contact details
type UpdateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// LineItemRequest is a single line item of an order request
type LineItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PlaceOrderRequest is the request body for placing an order
type PlaceOrderRequest struct {
	OrderID int               `json:"order_id" binding:"required"`
	Items   []LineItemRequest `json:"items"`
}

// CustomerResponse is the response body for customer operations
type CustomerResponse struct {
	ID              uint            `json:"id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	MembershipLevel string          `json:"membership_level"`
	RegisteredAt    string          `json:"registered_at"`
	YearsActive     int             `json:"years_active"`
	PremiumMember   bool            `json:"premium_member"`
	DiscountRate    decimal.Decimal `json:"discount_rate"`
	OrderCount      int             `json:"order_count"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
}

// OrderResponse is the response body for order operations
type OrderResponse struct {
	ID     int                `json:"id"`
	Date   string             `json:"date"`
	Status string             `json:"status"`
	Items  []LineItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

// LineItemResponse is a single line item of an order response
type LineItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

func toCustomerResponse(id uint, c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              id,
		FullName:        c.FullName(),
		Email:           c.Email(),
		MembershipLevel: string(c.MembershipLevel()),
		RegisteredAt:    c.RegistrationDate().Format("2006-01-02T15:04:05Z07:00"),
		YearsActive:     c.YearsSinceRegistration(),
		PremiumMember:   c.IsPremiumMember(),
		DiscountRate:    c.DiscountRate(),
		OrderCount:      c.OrderCount(),
		TotalSpent:      c.TotalSpent(),
	}
}

func toOrderResponse(o *orders.Order) OrderResponse {
	items := o.Items()
	respItems := make([]LineItemResponse, len(items))
	for i, item := range items {
		respItems[i] = LineItemResponse{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			TotalPrice:  item.TotalPrice(),
		}
	}

	return OrderResponse{
		ID:     o.ID(),
		Date:   o.Date().Format("2006-01-02T15:04:05Z07:00"),
		Status: string(o.Status()),
		Items:  respItems,
		Total:  o.TotalAmount(),
	}
}

func customerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewInvalidArgument("invalid customer id", nil))
		return 0, false
	}
	return uint(id), true
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.Error(errors.NewInvalidArgument("invalid order id", nil))
		return 0, false
	}
	return id, true
}

// RegisterCustomer handles POST /customers
func (h *HTTPHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidArgument("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.RegisterCustomer(c.Request.Context(), application.RegisterCustomerInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		MembershipLevel: req.MembershipLevel,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toCustomerResponse(output.ID, output.Customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetCustomer handles GET /customers/:id
func (h *HTTPHandler) GetCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := h.useCase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toCustomerResponse(id, customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// UpdateContact handles PATCH /customers/:id
func (h *HTTPHandler) UpdateContact(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidArgument("invalid request body", err.Error()))
		return
	}

	customer, err := h.useCase.UpdateContact(c.Request.Context(), application.UpdateContactInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toCustomerResponse(id, customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetReport handles GET /customers/:id/report
func (h *HTTPHandler) GetReport(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	report, err := h.useCase.GetReport(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, report)
}

// UpgradeMembership handles POST /customers/:id/membership/upgrade
func (h *HTTPHandler) UpgradeMembership(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	customer, err := h.useCase.UpgradeMembership(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toCustomerResponse(id, customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// PlaceOrder handles POST /customers/:id/orders
func (h *HTTPHandler) PlaceOrder(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidArgument("invalid request body", err.Error()))
		return
	}

	items := make([]application.LineItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = application.LineItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	output, err := h.useCase.PlaceOrder(c.Request.Context(), application.PlaceOrderInput{
		CustomerID: id,
		OrderID:    req.OrderID,
		Items:      items,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toOrderResponse(output.Order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetOrdersByStatus handles GET /customers/:id/orders?status=Pending
func (h *HTTPHandler) GetOrdersByStatus(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.Error(errors.NewInvalidArgument("status query parameter is required", nil))
		return
	}

	result, err := h.useCase.GetOrdersByStatus(c.Request.Context(), id, status)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]OrderResponse, len(result))
	for i, order := range result {
		responses[i] = toOrderResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     responses,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ProcessOrder handles POST /customers/:id/orders/:order_id/process
func (h *HTTPHandler) ProcessOrder(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	oid, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.useCase.ProcessOrder(c.Request.Context(), id, oid)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toOrderResponse(order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetOrderSummary handles GET /customers/:id/orders/:order_id/summary
func (h *HTTPHandler) GetOrderSummary(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	oid, ok := orderID(c)
	if !ok {
		return
	}

	summary, err := h.useCase.GetOrderSummary(c.Request.Context(), id, oid)
	if err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, summary)
}
