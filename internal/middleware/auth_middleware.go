package middleware

import (
	"strings"

	"stockemdia-backend/internal/repository"
	"stockemdia-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates the JWT bearer token and sets the
// account info in context. The TokenVersion check keeps one session active
// per account.
func RequireAuth(accountRepo repository.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Check strict session against DB
		account, err := accountRepo.FindByID(claims.AccountID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Account not found"})
		}

		if account.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
		}

		// Set account info in context for downstream handlers
		c.Locals("account_id", claims.AccountID.String())
		c.Locals("account_phone", claims.Phone)
		c.Locals("account_name", claims.Name)
		c.Locals("business_name", claims.BusinessName)

		return c.Next()
	}
}
