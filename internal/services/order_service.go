package services

import (
	"fmt"
	"log"
	"time"

	"shoply/internal/models"
	"shoply/internal/repositories"
	"shoply/pkg/rabbitmq"
)

// OrderEventPublisher publishes order lifecycle events. Satisfied by
// *rabbitmq.Client; nil disables publishing.
type OrderEventPublisher interface {
	PublishOrderPlaced(event rabbitmq.OrderPlacedEvent) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil when
// messaging is disabled.
func NewOrderService(orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// Checkout validates the order data, computes the total, and appends a
// Pending order to the ledger for the given user. The user id always
// comes from the authenticated context, never from the request body.
func (s *OrderService) Checkout(userID uint, items []models.OrderItem, shippingAddress, paymentMethod string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrInvalidOrder
	}
	if shippingAddress == "" {
		return nil, ErrInvalidOrder
	}
	if paymentMethod == "" {
		return nil, ErrInvalidOrder
	}

	var totalPrice float64
	for _, item := range items {
		totalPrice += item.Price * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		TotalPrice:      totalPrice,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if s.publisher != nil {
		event := rabbitmq.OrderPlacedEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			TotalPrice: order.TotalPrice,
			PlacedAt:   order.CreatedAt,
		}
		if err := s.publisher.PublishOrderPlaced(event); err != nil {
			// The order is already in the ledger; a lost event is not a
			// checkout failure.
			log.Printf("Warning: failed to publish order placed event for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListOrders returns the caller's orders in the order they were placed.
func (s *OrderService) ListOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}
