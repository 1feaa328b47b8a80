package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoply/internal/services"
)

// UserIDKey is the Locals key under which AuthRequired stores the
// authenticated user's id.
const UserIDKey = "user_id"

// AuthRequired gates protected routes behind a valid bearer token. The
// header must be exactly "Bearer <token>" (scheme case-sensitive).
// Missing-token and failed-token cases carry different messages but the
// same 401 status; the protected handler never runs on either.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authorized, no token",
			})
		}

		userID, err := authService.VerifyToken(parts[1])
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authorized, token failed",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user's id bound by AuthRequired.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
