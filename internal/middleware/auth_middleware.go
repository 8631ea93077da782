package middleware

import (
	"strings"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and stores the user id in the
// request locals. Missing, malformed, and expired tokens all surface as
// the same 401.
func AuthRequired(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return apperror.ErrUnauthorized
		}

		userID, err := tokens.Validate(token)
		if err != nil {
			return err
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(userIDKey).(uuid.UUID)
	return id
}
