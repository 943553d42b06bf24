package handlers

import (
	"github.com/gofiber/fiber/v2"

	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
)

type UserHandler struct {
	notificationRepo repositories.NotificationRepository
}

func NewUserHandler(notificationRepo repositories.NotificationRepository) *UserHandler {
	return &UserHandler{notificationRepo: notificationRepo}
}

// HandleMe handles GET /me
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	return c.JSON(CurrentUser(c))
}

// HandleGetPreferences handles GET /me/preferences
func (h *UserHandler) HandleGetPreferences(c *fiber.Ctx) error {
	user := CurrentUser(c)

	prefs, err := h.notificationRepo.GetOrCreatePreferences(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load email preferences",
		})
	}

	return c.JSON(prefs)
}

// HandleUpdatePreferences handles PUT /me/preferences. Omitted fields keep
// their current value.
func (h *UserHandler) HandleUpdatePreferences(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req models.PreferencesUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	prefs, err := h.notificationRepo.GetOrCreatePreferences(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load email preferences",
		})
	}

	if req.ReceiveStatusUpdates != nil {
		prefs.ReceiveStatusUpdates = *req.ReceiveStatusUpdates
	}
	if req.ReceiveNewApplications != nil {
		prefs.ReceiveNewApplications = *req.ReceiveNewApplications
	}
	if req.ReceiveAssignments != nil {
		prefs.ReceiveAssignments = *req.ReceiveAssignments
	}

	if err := h.notificationRepo.UpdatePreferences(prefs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update email preferences",
		})
	}

	return c.JSON(prefs)
}
