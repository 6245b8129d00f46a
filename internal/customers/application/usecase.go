package application

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-commerce/internal/customers/domain"
	"go-commerce/internal/customers/ports"
	orders "go-commerce/internal/orders/domain"
	"go-commerce/pkg/logger"
)

// CommerceUseCase handles customer and order business logic
type CommerceUseCase struct {
	repo      ports.CustomerRepository
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewCommerceUseCase creates a new commerce use case
func NewCommerceUseCase(
	repo ports.CustomerRepository,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *CommerceUseCase {
	return &CommerceUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// RegisterCustomerInput represents the input for registering a customer
type RegisterCustomerInput struct {
	FirstName       string
	LastName        string
	Email           string
	MembershipLevel string
}

// RegisterCustomerOutput represents the output of registering a customer
type RegisterCustomerOutput struct {
	ID       uint
	Customer *domain.Customer
}

// RegisterCustomer creates and stores a new customer. The membership
// level is optional; when empty the customer starts at Bronze.
func (uc *CommerceUseCase) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*RegisterCustomerOutput, error) {
	var customer *domain.Customer
	var err error

	if input.MembershipLevel == "" {
		customer, err = domain.NewCustomer(input.FirstName, input.LastName, input.Email)
	} else {
		var level domain.MembershipLevel
		level, err = domain.ParseMembershipLevel(input.MembershipLevel)
		if err != nil {
			return nil, err
		}
		customer, err = domain.NewCustomerWithLevel(input.FirstName, input.LastName, input.Email, level)
	}
	if err != nil {
		return nil, err
	}

	id, err := uc.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	// Publish event (best-effort, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishCustomerRegistered(ctx, id, customer); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish customer registered event",
				zap.Error(err),
				zap.Uint("customer_id", id),
			)
		}
	}

	uc.log.WithContext(ctx).Info("customer registered",
		zap.Uint("customer_id", id),
		zap.String("email", customer.Email()),
		zap.String("membership_level", string(customer.MembershipLevel())),
	)

	return &RegisterCustomerOutput{ID: id, Customer: customer}, nil
}

// UpdateContactInput represents the input for updating contact details.
// Empty fields are left unchanged.
type UpdateContactInput struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
}

// UpdateContact applies validated setters to a stored customer. The
// update is all-or-nothing: the first rejected field aborts the call
// before anything is persisted.
func (uc *CommerceUseCase) UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		if err := customer.SetFirstName(input.FirstName); err != nil {
			return nil, err
		}
	}
	if input.LastName != "" {
		if err := customer.SetLastName(input.LastName); err != nil {
			return nil, err
		}
	}
	if input.Email != "" {
		if err := customer.SetEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, input.ID, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// LineItemInput represents a single line item of an order request
type LineItemInput struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// PlaceOrderInput represents the input for placing an order. The order
// id is assigned by the caller.
type PlaceOrderInput struct {
	CustomerID uint
	OrderID    int
	Items      []LineItemInput
}

// PlaceOrderOutput represents the output of placing an order
type PlaceOrderOutput struct {
	Order *orders.Order
}

// PlaceOrder builds an order from the given line items and attaches it
// to the customer. Nothing is attached when any line item is invalid or
// the customer is at the order cap.
func (uc *CommerceUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error) {
	customer, err := uc.repo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	order := orders.NewOrder(input.OrderID)
	for _, item := range input.Items {
		if err := order.AddItem(item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := customer.AddOrder(order); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, input.CustomerID, customer); err != nil {
		return nil, err
	}

	// Publish event (best-effort, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderPlaced(ctx, input.CustomerID, customer.Email(), order); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order placed event",
				zap.Error(err),
				zap.Int("order_id", order.ID()),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order placed",
		zap.Uint("customer_id", input.CustomerID),
		zap.Int("order_id", order.ID()),
		zap.Int("items", order.ItemCount()),
		zap.String("total", order.TotalAmount().StringFixed(2)),
	)

	return &PlaceOrderOutput{Order: order}, nil
}

// ProcessOrder transitions a customer's pending order to processing
func (uc *CommerceUseCase) ProcessOrder(ctx context.Context, customerID uint, orderID int) (*orders.Order, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	order, err := customer.FindOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Process(); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, customerID, customer); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("order processed",
		zap.Uint("customer_id", customerID),
		zap.Int("order_id", orderID),
	)

	return order, nil
}

// UpgradeMembership advances a customer one membership level
func (uc *CommerceUseCase) UpgradeMembership(ctx context.Context, customerID uint) (*domain.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	previous := customer.MembershipLevel()
	customer.UpgradeMembership()

	if err := uc.repo.Update(ctx, customerID, customer); err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("membership upgraded",
		zap.Uint("customer_id", customerID),
		zap.String("from", string(previous)),
		zap.String("to", string(customer.MembershipLevel())),
	)

	return customer, nil
}

// GetCustomer retrieves a customer by id
func (uc *CommerceUseCase) GetCustomer(ctx context.Context, customerID uint) (*domain.Customer, error) {
	return uc.repo.GetByID(ctx, customerID)
}

// GetReport returns the customer's text report
func (uc *CommerceUseCase) GetReport(ctx context.Context, customerID uint) (string, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	return customer.Report(), nil
}

// GetOrderSummary returns the text summary of one of the customer's orders
func (uc *CommerceUseCase) GetOrderSummary(ctx context.Context, customerID uint, orderID int) (string, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}

	order, err := customer.FindOrder(orderID)
	if err != nil {
		return "", err
	}

	return order.Summary(), nil
}

// GetOrdersByStatus returns the customer's orders matching a status,
// most recent first
func (uc *CommerceUseCase) GetOrdersByStatus(ctx context.Context, customerID uint, status string) ([]*orders.Order, error) {
	customer, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	parsed, err := orders.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return customer.OrdersByStatus(parsed), nil
}
