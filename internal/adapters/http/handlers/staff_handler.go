package handlers

import (
	"errors"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StaffHandler handles staff directory administration
type StaffHandler struct {
	staffService *services.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List returns the full staff directory
// @Summary List staff
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Response
// @Router /staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.staffService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load staff directory")
	}
	return response.Success(c, "Staff retrieved successfully", staff)
}

// Get returns one staff record
// @Summary Get staff by ID
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id} [get]
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.staffService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return response.NotFound(c, "Staff member not found")
		}
		return response.InternalServerError(c, "Failed to load staff member")
	}
	return response.Success(c, "Staff retrieved successfully", staff)
}

// Create registers a new staff member (admin only)
// @Summary Create staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param body body services.StaffInput true "Staff data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var input services.StaffInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	staff, err := h.staffService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrStaffAlreadyExists):
			return response.Conflict(c, "Staff ID already exists")
		default:
			return response.InternalServerError(c, "Failed to create staff member")
		}
	}
	return response.Created(c, "Staff created successfully", staff)
}

// Update modifies an existing staff member (admin only)
// @Summary Update staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param body body services.StaffInput true "Staff data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var input services.StaffInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.ID = c.Params("id")

	staff, err := h.staffService.Update(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrStaffNotFound):
			return response.NotFound(c, "Staff member not found")
		default:
			return response.InternalServerError(c, "Failed to update staff member")
		}
	}
	return response.Success(c, "Staff updated successfully", staff)
}

// Delete removes a staff member (admin only, never yourself)
// @Summary Delete staff
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	actorID, _ := c.Locals("staffID").(string)

	err := h.staffService.Delete(c.Context(), actorID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDelete):
			return response.BadRequest(c, "You cannot delete your own account")
		case errors.Is(err, domain.ErrStaffNotFound):
			return response.NotFound(c, "Staff member not found")
		default:
			return response.InternalServerError(c, "Failed to delete staff member")
		}
	}
	return response.Success(c, "Staff deleted successfully", nil)
}
