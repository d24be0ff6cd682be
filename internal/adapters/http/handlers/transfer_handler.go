package handlers

import (
	"errors"
	"fmt"

	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/core/services"
	"gu-notepro/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler handles registry backup export and restore
type TransferHandler struct {
	transferService *services.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *services.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// Export downloads the full registry as a backup package (admin only)
// @Summary Export registry backup
// @Tags Transfer
// @Produce json
// @Success 200 {object} services.BackupPackage
// @Router /transfer/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	pkg, err := h.transferService.Export(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to export registry")
	}

	filename := fmt.Sprintf("notepro-backup-%s.json", pkg.ExportDate.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(pkg)
}

// Import destructively restores the registry from a backup package (admin only)
// @Summary Import registry backup
// @Tags Transfer
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transfer/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return response.BadRequest(c, "Backup file is required")
	}

	if err := h.transferService.Import(c.Context(), body); err != nil {
		if errors.Is(err, domain.ErrInvalidBackup) {
			return response.BadRequest(c, "Not a valid NotePro backup package")
		}
		return response.InternalServerError(c, "Failed to restore registry")
	}
	return response.Success(c, "Registry restored successfully", nil)
}
