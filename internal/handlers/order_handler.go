package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"shoply/internal/middleware"
	"shoply/internal/models"
	"shoply/internal/services"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes. The router passed in must
// already be behind the auth middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	router.Get("/orders", h.HandleListOrders)
}

// CheckoutRequest represents the request body for checkout. The user id
// is deliberately absent: it comes from the authenticated context.
type CheckoutRequest struct {
	Items           []models.OrderItem `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// HandleCheckout places an order for the authenticated user.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	userID := middleware.UserID(c)
	order, err := h.service.Checkout(userID, req.Items, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order data.",
			})
		}
		log.Printf("Error placing order for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order placed successfully! Thank you.",
		"orderId": order.ID,
	})
}

// HandleListOrders returns the authenticated user's order history in
// placement order.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	orders, err := h.service.ListOrders(userID)
	if err != nil {
		log.Printf("Error listing orders for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}
