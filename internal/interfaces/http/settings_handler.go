package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/usecase"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// SettingsHandler maneja preferencias, perfil de empresa e idioma.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devuelve preferencias, perfil e idioma en una sola lectura.
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.SettingsResponse{
		Settings: h.uc.GetSettings(),
		Company:  h.uc.GetCompany(),
		Language: h.uc.GetLanguage(),
	})
}

// SaveSettings persiste las preferencias de presentación (sin debounce).
// PUT /api/settings
func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	var in entity.InvoiceSettings
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveSettings(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.uc.GetSettings())
}

// SaveCompany persiste el perfil del emisor.
// PUT /api/company
func (h *SettingsHandler) SaveCompany(c *fiber.Ctx) error {
	var in entity.CompanyInfo
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveCompany(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.uc.GetCompany())
}

// SaveLanguage cambia el idioma activo.
// PUT /api/language
func (h *SettingsHandler) SaveLanguage(c *fiber.Ctx) error {
	var in struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveLanguage(in.Language); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"language": h.uc.GetLanguage()})
}
