package middleware

import (
	"strings"

	"github.com/campusfest/campus-events-backend/internal/models"
	jwtPkg "github.com/campusfest/campus-events-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware resolves the current identity from the session cookie
// set at login, or from a Bearer header for non-browser clients, and
// stores userID/userEmail/userRole in request locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(jwtPkg.CookieName)

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired session"))
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		userEmail, ok := claims["email"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email in token"))
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid role in token"))
		}

		c.Locals("userID", uint(userIDFloat))
		c.Locals("userEmail", userEmail)
		c.Locals("userRole", models.UserRole(userRole))

		return c.Next()
	}
}

// RequireRole gates a route on the flat two-role model. Runs after
// AuthMiddleware.
func RequireRole(role models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("userRole").(models.UserRole)
		if !ok || current != role {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access Denied"))
		}
		return c.Next()
	}
}

// CurrentUserID pulls the authenticated user's ID out of locals.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
