package ports

import (
	"context"

	"go-commerce/internal/customers/domain"
	orders "go-commerce/internal/orders/domain"
)

// CustomerRepository defines the interface for customer storage. The
// domain Customer carries no identifier; the repository assigns one.
type CustomerRepository interface {
	// Create stores a new customer and returns its assigned id
	Create(ctx context.Context, customer *domain.Customer) (uint, error)

	// GetByID retrieves a customer by id
	GetByID(ctx context.Context, id uint) (*domain.Customer, error)

	// Update replaces the stored customer for an id
	Update(ctx context.Context, id uint, customer *domain.Customer) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// PublishCustomerRegistered publishes a customer registered event
	PublishCustomerRegistered(ctx context.Context, id uint, customer *domain.Customer) error

	// PublishOrderPlaced publishes an order placed event
	PublishOrderPlaced(ctx context.Context, customerID uint, customerEmail string, order *orders.Order) error
}
