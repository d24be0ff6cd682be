package handlers

import (
	"errors"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler handles drafting assistant endpoints
type AssistantHandler struct {
	assistantService *services.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// RefineRequest represents a content refinement request body
type RefineRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// SuggestRemarkRequest represents a remark suggestion request body
type SuggestRemarkRequest struct {
	Content string `json:"content"`
	Hint    string `json:"hint"`
}

// ChatRequest represents an assistant chat request body
type ChatRequest struct {
	Query   string                 `json:"query"`
	History []services.ChatMessage `json:"history,omitempty"`
	Image   string                 `json:"image,omitempty"` // data URL
}

// Refine rewrites draft content into formal administrative language
// @Summary Refine note content
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body RefineRequest true "Draft content"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /assistant/refine [post]
func (h *AssistantHandler) Refine(c *fiber.Ctx) error {
	var req RefineRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Content == "" {
		return response.BadRequest(c, "Content is required")
	}

	refined, err := h.assistantService.RefineContent(c.Context(), req.Subject, req.Content)
	if err != nil {
		return h.assistantError(c, err)
	}
	return response.Success(c, "Content refined", fiber.Map{"content": refined})
}

// SuggestRemark proposes a short routing remark for a note
// @Summary Suggest remark
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body SuggestRemarkRequest true "Note content and action hint"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /assistant/suggest-remark [post]
func (h *AssistantHandler) SuggestRemark(c *fiber.Ctx) error {
	var req SuggestRemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	hint := services.RemarkHint(req.Hint)
	if hint != services.HintForward && hint != services.HintReturn {
		hint = services.HintForward
	}

	remark, err := h.assistantService.SuggestRemark(c.Context(), req.Content, hint)
	if err != nil {
		return h.assistantError(c, err)
	}
	return response.Success(c, "Remark suggested", fiber.Map{"remark": remark})
}

// Chat answers a free-form question, optionally about an uploaded image
// @Summary Assistant chat
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Query with optional history and image"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Query == "" && req.Image == "" {
		return response.BadRequest(c, "Query is required")
	}

	reply, err := h.assistantService.Chat(c.Context(), req.Query, req.History, req.Image)
	if err != nil {
		return h.assistantError(c, err)
	}
	return response.Success(c, "Reply generated", fiber.Map{"reply": reply})
}

func (h *AssistantHandler) assistantError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrAssistantUnavailable) {
		return response.BadGateway(c, "Drafting assistant is currently unavailable")
	}
	return response.InternalServerError(c, "Assistant request failed")
}
