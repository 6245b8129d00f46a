package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exchange names
const (
	ExchangeCommerce = "commerce.events"
)

// Routing keys
const (
	RoutingKeyCustomerRegistered = "customer.registered"
	RoutingKeyOrderPlaced        = "order.placed"
)

// CustomerRegisteredEvent is published when a customer is registered
type CustomerRegisteredEvent struct {
	Version   string                    `json:"version"`
	EventType string                    `json:"event_type"`
	Timestamp time.Time                 `json:"timestamp"`
	TraceID   string                    `json:"trace_id"`
	Payload   CustomerRegisteredPayload `json:"payload"`
}

// CustomerRegisteredPayload contains customer data
type CustomerRegisteredPayload struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	MembershipLevel string    `json:"membership_level"`
	RegisteredAt    time.Time `json:"registered_at"`
}

// NewCustomerRegisteredEvent creates a new CustomerRegisteredEvent
func NewCustomerRegisteredEvent(id uint, name, email, membershipLevel string, registeredAt time.Time, traceID string) *CustomerRegisteredEvent {
	return &CustomerRegisteredEvent{
		Version:   "1.0",
		EventType: "customer.registered",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: CustomerRegisteredPayload{
			ID:              id,
			Name:            name,
			Email:           email,
			MembershipLevel: membershipLevel,
			RegisteredAt:    registeredAt,
		},
	}
}

// OrderPlacedEvent is published when an order is attached to a customer
type OrderPlacedEvent struct {
	Version   string             `json:"version"`
	EventType string             `json:"event_type"`
	Timestamp time.Time          `json:"timestamp"`
	TraceID   string             `json:"trace_id"`
	Payload   OrderPlacedPayload `json:"payload"`
}

// OrderPlacedPayload contains order data
type OrderPlacedPayload struct {
	OrderID       int             `json:"order_id"`
	CustomerID    uint            `json:"customer_id"`
	CustomerEmail string          `json:"customer_email"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PlacedAt      time.Time       `json:"placed_at"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(orderID int, customerID uint, customerEmail string, total decimal.Decimal, status string, placedAt time.Time, traceID string) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		Version:   "1.0",
		EventType: "order.placed",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: OrderPlacedPayload{
			OrderID:       orderID,
			CustomerID:    customerID,
			CustomerEmail: customerEmail,
			Total:         total,
			Status:        status,
			PlacedAt:      placedAt,
		},
	}
}
