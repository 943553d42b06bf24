package handlers

import (
	"github.com/gofiber/fiber/v2"

	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
)

const userContextKey = "currentUser"

type AuthMiddleware struct {
	userRepo repositories.UserRepository
}

func NewAuthMiddleware(userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo}
}

// RequireUser resolves the X-API-Token header to a user and stores it in
// the request context.
func (m *AuthMiddleware) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-API-Token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing API token",
			})
		}

		user, err := m.userRepo.FindByAPIToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid API token",
			})
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// RequireRecruiter rejects users that may not triage applications. It must
// run after RequireUser.
func (m *AuthMiddleware) RequireRecruiter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.CanManageApplications() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "recruiter or admin role required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireUser.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userContextKey).(*models.User)
	return user
}
