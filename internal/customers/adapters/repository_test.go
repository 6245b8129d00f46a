package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-commerce/internal/customers/domain"
	"go-commerce/pkg/errors"
)

func TestMemoryCustomerRepository(t *testing.T) {
	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	customer, err := domain.NewCustomer("Jane", "Doe", "jane@doe.com")
	require.NoError(t, err)

	id, err := repo.Create(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Same(t, customer, got)

	require.NoError(t, customer.SetEmail("jane@smith.org"))
	require.NoError(t, repo.Update(ctx, id, customer))

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "jane@smith.org", got.Email())
}

func TestMemoryCustomerRepository_NotFound(t *testing.T) {
	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	customer, err := domain.NewCustomer("Jane", "Doe", "jane@doe.com")
	require.NoError(t, err)
	assert.True(t, errors.Is(repo.Update(ctx, 99, customer), errors.CodeNotFound))
}

func TestMemoryCustomerRepository_SequentialIDs(t *testing.T) {
	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	for want := uint(1); want <= 3; want++ {
		customer, err := domain.NewCustomer("Jane", "Doe", "jane@doe.com")
		require.NoError(t, err)

		id, err := repo.Create(ctx, customer)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}
