package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shoply/internal/models"
	"shoply/internal/repositories"
)

func TestMemoryUserRepository_SequentialIDs(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	first := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash-a"}
	second := &models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "hash-b"}

	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestMemoryUserRepository_GetByEmail(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	assert.NoError(t, repo.Create(&models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash-a"}))

	user, err := repo.GetByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	// Matching is case-sensitive, exactly as stored.
	_, err = repo.GetByEmail("ALICE@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryUserRepository_GetByID(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	user := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash-a"}
	assert.NoError(t, repo.Create(user))

	found, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryOrderRepository_InsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	items := []models.OrderItem{{ProductID: 1, Name: "Smartphone", Price: 12000, Quantity: 1}}
	for _, userID := range []uint{1, 2, 1, 1, 2} {
		order := &models.Order{UserID: userID, Items: items, TotalPrice: 12000, Status: models.OrderStatusPending}
		assert.NoError(t, repo.Create(order))
	}
	assert.Equal(t, 5, repo.Count())

	orders, err := repo.GetByUserID(1)
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	// Ids are monotonic, so insertion order is ascending id.
	assert.Equal(t, uint(1), orders[0].ID)
	assert.Equal(t, uint(3), orders[1].ID)
	assert.Equal(t, uint(4), orders[2].ID)

	orders, err = repo.GetByUserID(42)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMemoryProductRepository(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	assert.NoError(t, repo.Create(&models.Product{Name: "Smartphone", Price: 12000, Stock: 10}))
	assert.NoError(t, repo.Create(&models.Product{Name: "Headphones", Price: 2000, Stock: 15}))

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Smartphone", products[0].Name)

	product, err := repo.GetByID(2)
	assert.NoError(t, err)
	assert.Equal(t, "Headphones", product.Name)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
