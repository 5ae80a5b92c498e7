package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalSellerID    = "seller_id"
	LocalSellerEmail = "seller_email"
	LocalSellerName  = "seller_name"
)

// AuthMiddleware validates the Bearer token and loads the seller identity
// into c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalSellerID, claims.SellerID)
		c.Locals(LocalSellerEmail, claims.Email)
		c.Locals(LocalSellerName, claims.Name)
		return c.Next()
	}
}

// GetSellerID returns the seller id set by AuthMiddleware.
func GetSellerID(c *fiber.Ctx) string {
	return localString(c, LocalSellerID)
}

// GetSellerEmail returns the seller email set by AuthMiddleware.
func GetSellerEmail(c *fiber.Ctx) string {
	return localString(c, LocalSellerEmail)
}

// GetSellerName returns the seller name set by AuthMiddleware.
func GetSellerName(c *fiber.Ctx) string {
	return localString(c, LocalSellerName)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
