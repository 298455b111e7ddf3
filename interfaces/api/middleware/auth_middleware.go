package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

// Protected validates the bearer token and stores its claims on the
// request.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		claims, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			if errors.Is(err, utils.ErrExpiredToken) {
				return utils.UnauthorizedResponse(c, "Token has expired")
			}
			return utils.UnauthorizedResponse(c, "Invalid token")
		}

		utils.SetUserContext(c, claims)
		return c.Next()
	}
}

// RequireRole rejects authenticated users outside the given role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := utils.GetUserFromContext(c)
		if claims == nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}
		if claims.Role != role {
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
		return c.Next()
	}
}

// AdminOnly guards the admin console routes.
func AdminOnly() fiber.Handler {
	return RequireRole("admin")
}
