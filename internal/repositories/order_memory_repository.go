package repositories

import (
	"sync"

	"shoply/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// The ledger is a slice: appends assign the next sequential id and
// listing preserves insertion order.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Create appends a new order, assigning the next sequential id.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, *order)
	return nil
}

// GetByUserID returns the orders belonging to the given user, in the
// order they were placed. An empty slice is not an error.
func (r *MemoryOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userOrders := make([]models.Order, 0)
	for i := range r.orders {
		if r.orders[i].UserID == userID {
			userOrders = append(userOrders, r.orders[i])
		}
	}
	return userOrders, nil
}

// Count reports how many orders the ledger holds.
func (r *MemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
