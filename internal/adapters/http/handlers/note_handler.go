package handlers

import (
	"errors"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NoteHandler handles note sheet workflow endpoints
type NoteHandler struct {
	workflowService *services.WorkflowService
	trayService     *services.TrayService
	dispatchService *services.DispatchService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(
	workflowService *services.WorkflowService,
	trayService *services.TrayService,
	dispatchService *services.DispatchService,
) *NoteHandler {
	return &NoteHandler{
		workflowService: workflowService,
		trayService:     trayService,
		dispatchService: dispatchService,
	}
}

// Initiate creates a new note sheet and routes it to its first recipient
// @Summary Initiate note sheet
// @Tags Notes
// @Accept json
// @Produce json
// @Param body body services.InitiateInput true "Note data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /notes [post]
func (h *NoteHandler) Initiate(c *fiber.Ctx) error {
	actorID, _ := c.Locals("staffID").(string)

	var input services.InitiateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	note, err := h.workflowService.Initiate(c.Context(), actorID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrSelfRecipient):
			return response.BadRequest(c, "A note sheet cannot be routed to its own initiator")
		case errors.Is(err, domain.ErrStaffNotFound):
			return response.BadRequest(c, "Recipient not found in staff directory")
		default:
			return response.InternalServerError(c, "Failed to initiate note sheet")
		}
	}
	return response.Created(c, "Note sheet initiated successfully", note)
}

// Act applies a workflow action to a note sheet
// @Summary Act on note sheet
// @Description Apply FORWARD, RETURN, APPROVE or REJECT to a note in your custody
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param body body services.ActionInput true "Action data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notes/{id}/action [post]
func (h *NoteHandler) Act(c *fiber.Ctx) error {
	actorID, _ := c.Locals("staffID").(string)

	var input services.ActionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	note, err := h.workflowService.Act(c.Context(), actorID, c.Params("id"), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoteNotFound):
			return response.NotFound(c, "Note sheet not found")
		case errors.Is(err, domain.ErrForbiddenTransition):
			return response.Forbidden(c, "This note sheet has reached a final decision")
		case errors.Is(err, domain.ErrNotCustodian):
			return response.Forbidden(c, "Only the current handler can act on this note sheet")
		case errors.Is(err, domain.ErrSelfRecipient):
			return response.BadRequest(c, "A note sheet cannot be forwarded to yourself")
		case errors.Is(err, domain.ErrStaffNotFound):
			return response.BadRequest(c, "Recipient not found in staff directory")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to process action")
		}
	}
	return response.Success(c, "Action processed successfully", note)
}

// Get returns a single note sheet with its full movement history
// @Summary Get note sheet
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c *fiber.Ctx) error {
	note, err := h.workflowService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return response.NotFound(c, "Note sheet not found")
		}
		return response.InternalServerError(c, "Failed to load note sheet")
	}
	return response.Success(c, "Note retrieved successfully", note)
}

// List returns the caller's tray view
// @Summary List notes by tray
// @Description Classify notes into IN_TRAY, OUT_TRAY or ALL_HITS for the caller
// @Tags Notes
// @Produce json
// @Param tray query string false "Tray (IN_TRAY, OUT_TRAY, ALL_HITS)"
// @Param search query string false "Case-insensitive subject/refno/state filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /notes [get]
func (h *NoteHandler) List(c *fiber.Ctx) error {
	actorID, _ := c.Locals("staffID").(string)

	tray := services.Tray(c.Query("tray", string(services.TrayIn)))
	switch tray {
	case services.TrayIn, services.TrayOut, services.TrayAllHits:
	default:
		return response.BadRequest(c, "Unknown tray")
	}

	notes, err := h.trayService.List(c.Context(), actorID, tray, c.Query("search"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load notes")
	}
	return response.Success(c, "Notes retrieved successfully", notes)
}

// Stats returns the caller's tray counters
// @Summary Tray statistics
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Response
// @Router /notes/stats [get]
func (h *NoteHandler) Stats(c *fiber.Ctx) error {
	actorID, _ := c.Locals("staffID").(string)

	stats, err := h.trayService.Stats(c.Context(), actorID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load tray statistics")
	}
	return response.Success(c, "Statistics retrieved successfully", stats)
}

// Overview returns registry-wide per-status counts
// @Summary Registry overview
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Response
// @Router /notes/overview [get]
func (h *NoteHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.trayService.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load registry overview")
	}
	return response.Success(c, "Overview retrieved successfully", overview)
}

// DispatchState returns the current notification dispatch progress
// @Summary Dispatch progress
// @Tags Notes
// @Produce json
// @Success 200 {object} response.Response
// @Router /notes/dispatch [get]
func (h *NoteHandler) DispatchState(c *fiber.Ctx) error {
	return response.Success(c, "Dispatch state retrieved", h.dispatchService.State())
}
