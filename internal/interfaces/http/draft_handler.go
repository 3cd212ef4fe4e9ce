package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// DraftHandler maneja el borrador autosalvado.
type DraftHandler struct {
	uc *appbilling.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *appbilling.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Get devuelve el borrador vigente (o el formulario por defecto).
// GET /api/draft
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	f, found := h.uc.LoadDraft()
	return c.JSON(dto.DraftResponse{Form: f, Found: found})
}

// Save agenda la persistencia del borrador (debounce). 202: la escritura
// ocurre cuando vence la ventana, no dentro de la petición.
// PUT /api/draft
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	var f entity.FormState
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.uc.SaveDraft(f)
	return c.SendStatus(fiber.StatusAccepted)
}

// Clear descarta el borrador.
// DELETE /api/draft
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearDraft(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
