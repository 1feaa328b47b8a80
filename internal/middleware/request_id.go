package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the client's X-Request-ID or assigns a fresh one,
// echoing it on the response so log lines can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("rid", rid)
		c.Set(requestIDHeader, rid)
		return c.Next()
	}
}
