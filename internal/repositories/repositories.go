package repositories

import (
	"errors"

	"shoply/internal/models"
)

// ErrNotFound is wrapped by every repository lookup that misses, so
// callers can test with errors.Is regardless of the backing store.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

// OrderRepository defines the interface for the order ledger. Orders are
// append-only; there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID uint) ([]models.Order, error)
}

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}
