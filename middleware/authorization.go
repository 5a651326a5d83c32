package middleware

import (
	"strings"

	"visa-console-backend/config"
	"visa-console-backend/db/models"
	"visa-console-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProtectedRoute guards a route group. The console sends the access token
// as "Authorization: Bearer <token>"; refresh happens through the explicit
// /users/refresh endpoint, so an expired access token here is simply a 401.
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		accessToken := strings.TrimPrefix(header, "Bearer ")
		if accessToken == header || accessToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Malformed authorization header",
			})
		}

		payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
		if err != nil {
			// Log internally, but don't expose verification details to the client
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please log in again.",
			})
		}

		c.Locals("user", payload)
		return c.Next()
	}
}

// AdminOnly restricts a route to admin users. Must run after ProtectedRoute.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, ok := c.Locals("user").(*token.Payload)
		if !ok || payload.Role != string(models.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "Admin access required",
			})
		}
		return c.Next()
	}
}
