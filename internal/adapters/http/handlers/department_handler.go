package handlers

import (
	"errors"
	"net/url"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DepartmentHandler handles the organisational unit list
type DepartmentHandler struct {
	deptService *services.DepartmentService
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(deptService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptService: deptService}
}

// DepartmentRequest represents a department create request body
type DepartmentRequest struct {
	Name string `json:"name"`
}

// List returns all department names
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.deptService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load departments")
	}
	return response.Success(c, "Departments retrieved successfully", departments)
}

// Create adds a department (admin only)
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Param body body DepartmentRequest true "Department name"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.deptService.Add(c.Context(), req.Name); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return response.BadRequest(c, "Department name is required")
		}
		return response.InternalServerError(c, "Failed to create department")
	}
	return response.Created(c, "Department created successfully", nil)
}

// Delete removes a department unless staff still reference it (admin only)
// @Summary Delete department
// @Tags Departments
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments/{name} [delete]
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	// Department names contain spaces, so the path segment arrives escaped.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return response.BadRequest(c, "Invalid department name")
	}

	if err := h.deptService.Delete(c.Context(), name); err != nil {
		switch {
		case errors.Is(err, domain.ErrDepartmentInUse):
			return response.Conflict(c, "Department still has staff assigned to it")
		case errors.Is(err, domain.ErrDepartmentNotFound):
			return response.NotFound(c, "Department not found")
		default:
			return response.InternalServerError(c, "Failed to delete department")
		}
	}
	return response.Success(c, "Department deleted successfully", nil)
}
