package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoply/internal/models"
	"shoply/internal/repositories"
	"shoply/internal/services"
	"shoply/pkg/rabbitmq"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockOrderPublisher is a mock implementation of services.OrderEventPublisher.
type MockOrderPublisher struct {
	mock.Mock
}

func (m *MockOrderPublisher) PublishOrderPlaced(event rabbitmq.OrderPlacedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestOrderService_Checkout_InvalidData(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo, nil)

	items := []models.OrderItem{{ProductID: 1, Name: "Smartphone", Price: 100, Quantity: 2}}

	cases := []struct {
		name            string
		items           []models.OrderItem
		shippingAddress string
		paymentMethod   string
	}{
		{"empty items", nil, "12 Main St", "card"},
		{"missing shipping address", items, "", "card"},
		{"missing payment method", items, "12 Main St", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orderService.Checkout(5, tc.items, tc.shippingAddress, tc.paymentMethod)
			assert.ErrorIs(t, err, services.ErrInvalidOrder)
		})
	}

	// No order must ever reach the ledger on a validation failure.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_Checkout(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockOrderPublisher)
	orderService := services.NewOrderService(mockRepo, mockPublisher)

	items := []models.OrderItem{
		{ProductID: 1, Name: "Smartphone", Price: 100, Quantity: 2},
		{ProductID: 2, Name: "Headphones", Price: 50, Quantity: 1},
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*models.Order)
		order.ID = 1
	}).Return(nil).Once()
	mockPublisher.On("PublishOrderPlaced", mock.AnythingOfType("rabbitmq.OrderPlacedEvent")).Return(nil).Once()

	order, err := orderService.Checkout(5, items, "12 Main St", "card")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, uint(5), order.UserID)
	assert.Equal(t, 250.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Len(t, order.Items, 2)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_Checkout_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockOrderPublisher)
	orderService := services.NewOrderService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPublisher.On("PublishOrderPlaced", mock.Anything).
		Return(assert.AnError).Once()

	order, err := orderService.Checkout(5,
		[]models.OrderItem{{ProductID: 1, Name: "Toys", Price: 500, Quantity: 1}},
		"12 Main St", "cod")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_ListOrders(t *testing.T) {
	// Use the real in-memory ledger to check per-user filtering and
	// insertion order across interleaved users.
	orderRepo := repositories.NewMemoryOrderRepository()
	orderService := services.NewOrderService(orderRepo, nil)

	item := []models.OrderItem{{ProductID: 9, Name: "Toys", Price: 500, Quantity: 1}}
	first, err := orderService.Checkout(1, item, "12 Main St", "card")
	assert.NoError(t, err)
	_, err = orderService.Checkout(2, item, "9 Side St", "cod")
	assert.NoError(t, err)
	second, err := orderService.Checkout(1, item, "12 Main St", "card")
	assert.NoError(t, err)

	orders, err := orderService.ListOrders(1)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, uint(1), o.UserID)
	}

	// A user with no orders gets an empty slice, not an error.
	orders, err = orderService.ListOrders(3)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}
