package application

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"go-commerce/internal/customers/domain"
	orders "go-commerce/internal/orders/domain"
	"go-commerce/pkg/errors"
	"go-commerce/pkg/logger"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	customers map[uint]*domain.Customer
	nextID    uint
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[uint]*domain.Customer),
		nextID:    1,
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (uint, error) {
	id := m.nextID
	m.nextID++
	m.customers[id] = customer
	return id, nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, domain.NewCustomerNotFound(id)
	}
	return customer, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, id uint, customer *domain.Customer) error {
	if _, ok := m.customers[id]; !ok {
		return domain.NewCustomerNotFound(id)
	}
	m.customers[id] = customer
	return nil
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	registered []uint
	placed     []int
}

func (m *MockEventPublisher) PublishCustomerRegistered(ctx context.Context, id uint, customer *domain.Customer) error {
	m.registered = append(m.registered, id)
	return nil
}

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, customerID uint, customerEmail string, order *orders.Order) error {
	m.placed = append(m.placed, order.ID())
	return nil
}

func newTestUseCase() (*CommerceUseCase, *MockCustomerRepository, *MockEventPublisher) {
	repo := NewMockCustomerRepository()
	publisher := &MockEventPublisher{}
	log := logger.New("test", "debug", "json")
	return NewCommerceUseCase(repo, publisher, log), repo, publisher
}

func registerJane(t *testing.T, uc *CommerceUseCase) uint {
	t.Helper()

	output, err := uc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@doe.com",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return output.ID
}

func TestRegisterCustomer_Success(t *testing.T) {
	useCase, _, publisher := newTestUseCase()

	output, err := useCase.RegisterCustomer(context.Background(), RegisterCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@doe.com",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.ID != 1 {
		t.Errorf("expected ID 1, got %d", output.ID)
	}
	if output.Customer.MembershipLevel() != domain.MembershipBronze {
		t.Errorf("expected Bronze membership, got %s", output.Customer.MembershipLevel())
	}
	if len(publisher.registered) != 1 {
		t.Errorf("expected 1 event published, got %d", len(publisher.registered))
	}
}

func TestRegisterCustomer_WithLevel(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	output, err := useCase.RegisterCustomer(context.Background(), RegisterCustomerInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@doe.com",
		MembershipLevel: "Platinum",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Customer.MembershipLevel() != domain.MembershipPlatinum {
		t.Errorf("expected Platinum membership, got %s", output.Customer.MembershipLevel())
	}
}

func TestRegisterCustomer_InvalidEmail(t *testing.T) {
	useCase, _, publisher := newTestUseCase()

	_, err := useCase.RegisterCustomer(context.Background(), RegisterCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "no-dot@com",
	})

	if !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if len(publisher.registered) != 0 {
		t.Errorf("expected no events published, got %d", len(publisher.registered))
	}
}

func TestRegisterCustomer_UnknownLevel(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.RegisterCustomer(context.Background(), RegisterCustomerInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@doe.com",
		MembershipLevel: "Diamond",
	})

	if !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	useCase, repo, publisher := newTestUseCase()
	id := registerJane(t, useCase)

	output, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: id,
		OrderID:    1,
		Items: []LineItemInput{
			{ProductName: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Order.ID() != 1 {
		t.Errorf("expected order ID 1, got %d", output.Order.ID())
	}
	if !output.Order.TotalAmount().Equal(decimal.RequireFromString("19.98")) {
		t.Errorf("expected total 19.98, got %s", output.Order.TotalAmount())
	}
	if len(publisher.placed) != 1 {
		t.Errorf("expected 1 event published, got %d", len(publisher.placed))
	}

	customer, _ := repo.GetByID(context.Background(), id)
	if customer.OrderCount() != 1 {
		t.Errorf("expected 1 order on customer, got %d", customer.OrderCount())
	}
}

func TestPlaceOrder_InvalidItem(t *testing.T) {
	useCase, repo, publisher := newTestUseCase()
	id := registerJane(t, useCase)

	_, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: id,
		OrderID:    1,
		Items: []LineItemInput{
			{ProductName: "Widget", Quantity: 0, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})

	if !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}

	// All-or-nothing: the rejected order must not be attached
	customer, _ := repo.GetByID(context.Background(), id)
	if customer.OrderCount() != 0 {
		t.Errorf("expected 0 orders on customer, got %d", customer.OrderCount())
	}
	if len(publisher.placed) != 0 {
		t.Errorf("expected no events published, got %d", len(publisher.placed))
	}
}

func TestPlaceOrder_CapExceeded(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	for i := 1; i <= domain.MaxOrdersPerDay; i++ {
		_, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{
			CustomerID: id,
			OrderID:    i,
		})
		if err != nil {
			t.Fatalf("order %d: expected no error, got %v", i, err)
		}
	}

	_, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: id,
		OrderID:    domain.MaxOrdersPerDay + 1,
	})
	if !errors.Is(err, errors.CodeInvalidOperation) {
		t.Fatalf("expected invalid operation error, got %v", err)
	}
}

func TestProcessOrder(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	if _, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{CustomerID: id, OrderID: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	order, err := useCase.ProcessOrder(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Status() != orders.StatusProcessing {
		t.Errorf("expected Processing status, got %s", order.Status())
	}

	// Processing the same order again violates the state machine
	if _, err := useCase.ProcessOrder(context.Background(), id, 1); !errors.Is(err, errors.CodeInvalidOperation) {
		t.Fatalf("expected invalid operation error, got %v", err)
	}
}

func TestProcessOrder_NotFound(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	if _, err := useCase.ProcessOrder(context.Background(), id, 99); !errors.Is(err, errors.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateContact(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	customer, err := useCase.UpdateContact(context.Background(), UpdateContactInput{
		ID:    id,
		Email: "jane@smith.org",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if customer.Email() != "jane@smith.org" {
		t.Errorf("expected updated email, got %s", customer.Email())
	}
	if customer.FullName() != "Jane Doe" {
		t.Errorf("expected name unchanged, got %s", customer.FullName())
	}

	if _, err := useCase.UpdateContact(context.Background(), UpdateContactInput{ID: id, Email: "broken"}); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestUpgradeMembership(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	for _, want := range []domain.MembershipLevel{domain.MembershipSilver, domain.MembershipGold, domain.MembershipPlatinum} {
		customer, err := useCase.UpgradeMembership(context.Background(), id)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if customer.MembershipLevel() != want {
			t.Errorf("expected %s, got %s", want, customer.MembershipLevel())
		}
	}
}

func TestGetReport(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	report, err := useCase.GetReport(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(report, "Membership: Bronze") {
		t.Errorf("report missing membership line:\n%s", report)
	}
	if !strings.Contains(report, "Name: Jane Doe") {
		t.Errorf("report missing name line:\n%s", report)
	}
}

func TestGetOrdersByStatus_UnknownStatus(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	if _, err := useCase.GetOrdersByStatus(context.Background(), id, "bogus"); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestGetOrderSummary(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	id := registerJane(t, useCase)

	if _, err := useCase.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerID: id,
		OrderID:    3,
		Items: []LineItemInput{
			{ProductName: "Widget", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	summary, err := useCase.GetOrderSummary(context.Background(), id, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(summary, "Order #3") {
		t.Errorf("summary missing order line:\n%s", summary)
	}
	if !strings.Contains(summary, "Total: $5.00") {
		t.Errorf("summary missing total line:\n%s", summary)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	if _, err := useCase.GetCustomer(context.Background(), 42); !errors.Is(err, errors.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
