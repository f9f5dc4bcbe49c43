package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/services"
)

// UserIDKey is the fiber locals key under which the authenticated user ID is
// stored for downstream handlers.
const UserIDKey = "user_id"

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token. Missing header, malformed scheme, invalid signature, and
// expired token each produce a distinguishing 401 message.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.New(apperrors.KindAuth, "no token provided")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.New(apperrors.KindAuth, "authorization header format must be 'Bearer <token>'")
		}

		userID, err := authService.VerifyToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
