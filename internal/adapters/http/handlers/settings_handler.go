package handlers

import (
	"errors"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles institution branding endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// LogoRequest represents a logo update request body
type LogoRequest struct {
	Logo string `json:"logo"` // data URL, empty clears
}

// Get returns the branding record
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load settings")
	}
	return response.Success(c, "Settings retrieved successfully", settings)
}

// UpdateLogo stores or clears the university logo (admin only)
// @Summary Update logo
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body LogoRequest true "Logo data URL"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings/logo [put]
func (h *SettingsHandler) UpdateLogo(c *fiber.Ctx) error {
	var req LogoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	settings, err := h.settingsService.UpdateLogo(c.Context(), req.Logo)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return response.BadRequest(c, "Logo must be a data URL")
		}
		return response.InternalServerError(c, "Failed to update logo")
	}
	return response.Success(c, "Logo updated successfully", settings)
}
