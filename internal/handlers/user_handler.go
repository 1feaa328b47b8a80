package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"shoply/internal/middleware"
	"shoply/internal/services"
)

// UserHandler handles HTTP requests for the user profile.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes registers the profile route. The router passed in must
// already be behind the auth middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleProfile)
}

// HandleProfile returns the authenticated user's name and email. A 404
// is reachable when a still-valid token outlives its user.
func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error loading profile for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
		})
	}
	return c.JSON(profile)
}
