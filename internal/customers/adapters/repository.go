package adapters

import (
	"context"
	"sync"

	"go-commerce/internal/customers/domain"
)

// MemoryCustomerRepository implements CustomerRepository with an
// in-memory map. The mutex guards the map only; a stored Customer is
// still expected to be mutated by one caller at a time.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[uint]*domain.Customer
	nextID    uint
}

// NewMemoryCustomerRepository creates an empty in-memory repository
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[uint]*domain.Customer),
		nextID:    1,
	}
}

// Create stores a new customer and returns its assigned id
func (r *MemoryCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.customers[id] = customer

	return id, nil
}

// GetByID retrieves a customer by id
func (r *MemoryCustomerRepository) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.NewCustomerNotFound(id)
	}
	return customer, nil
}

// Update replaces the stored customer for an id
func (r *MemoryCustomerRepository) Update(ctx context.Context, id uint, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return domain.NewCustomerNotFound(id)
	}

	r.customers[id] = customer
	return nil
}
