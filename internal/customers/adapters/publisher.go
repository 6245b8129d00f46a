package adapters

import (
	"context"

	"go-commerce/internal/customers/domain"
	orders "go-commerce/internal/orders/domain"
	"go-commerce/pkg/events"
	"go-commerce/pkg/logger"
	"go-commerce/pkg/rabbitmq"
)

// RabbitMQPublisher implements EventPublisher using RabbitMQ
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQPublisher creates a new RabbitMQ event publisher
func NewRabbitMQPublisher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher: publisher,
		log:       log,
	}
}

// PublishCustomerRegistered publishes a customer registered event
func (p *RabbitMQPublisher) PublishCustomerRegistered(ctx context.Context, id uint, customer *domain.Customer) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewCustomerRegisteredEvent(
		id,
		customer.FullName(),
		customer.Email(),
		string(customer.MembershipLevel()),
		customer.RegistrationDate(),
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyCustomerRegistered, event)
}

// PublishOrderPlaced publishes an order placed event
func (p *RabbitMQPublisher) PublishOrderPlaced(ctx context.Context, customerID uint, customerEmail string, order *orders.Order) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewOrderPlacedEvent(
		order.ID(),
		customerID,
		customerEmail,
		order.TotalAmount(),
		string(order.Status()),
		order.Date(),
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyOrderPlaced, event)
}
