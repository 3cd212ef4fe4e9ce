package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/usecase"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
)

// InvoiceHandler maneja las peticiones HTTP del generador de documentos.
type InvoiceHandler struct {
	generateUC *appbilling.GenerateInvoiceUseCase
	pdfUC      *appbilling.PDFUseCase
	shareUC    *appbilling.ShareUseCase
	settingsUC *usecase.SettingsUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	generateUC *appbilling.GenerateInvoiceUseCase,
	pdfUC *appbilling.PDFUseCase,
	shareUC *appbilling.ShareUseCase,
	settingsUC *usecase.SettingsUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{
		generateUC: generateUC,
		pdfUC:      pdfUC,
		shareUC:    shareUC,
		settingsUC: settingsUC,
	}
}

// language resuelve el idioma de la petición: explícito en el body, luego
// query ?lang=, luego Accept-Language, y por último el idioma guardado.
func (h *InvoiceHandler) language(c *fiber.Ctx, explicit string) string {
	switch explicit {
	case "en", "fr", "ar":
		return explicit
	}
	if q := c.Query("lang"); q != "" {
		return i18n.Match(q)
	}
	if accept := c.Get(fiber.HeaderAcceptLanguage); accept != "" {
		return i18n.Match(accept)
	}
	return h.settingsUC.GetLanguage()
}

// Preview godoc
// @Summary      Desglose en vivo del formulario
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  entity.FormState  true  "Formulario en edición"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var f entity.FormState
	if err := c.BodyParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.generateUC.Preview(f, h.language(c, "")))
}

// EditPortion reconcilia una porción de pago tras una tecleada.
// POST /api/invoices/portion
func (h *InvoiceHandler) EditPortion(c *fiber.Ctx) error {
	var in dto.PortionEditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.generateUC.EditPortion(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target o kind inválido"})
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar snapshot de factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "Formulario completo"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.generateUC.Generate(c.Context(), in.Form, h.language(c, in.Language))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceResponse{
		Invoice:  *inv,
		EditForm: appbilling.FormFromInvoice(*inv),
	})
}

// GetByID obtiene un snapshot del archivo histórico.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.generateUC.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(inv)
}

// List lista el archivo histórico.
// GET /api/invoices?limit=&offset=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	invoices, err := h.generateUC.ListInvoices(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return h.mapError(c, err)
	}
	out := dto.InvoiceListResponse{
		Invoices: make([]entity.Invoice, 0, len(invoices)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, *inv)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Generar y descargar el PDF del documento
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateInvoiceRequest  true  "Formulario completo"
// @Success      200   {file}    binary
// @Failure      409   {object}  dto.ErrorResponse  "Exportación en curso"
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/invoices/pdf [post]
func (h *InvoiceHandler) ExportPDF(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.generateUC.Generate(c.Context(), in.Form, h.language(c, in.Language))
	if err != nil {
		return h.mapError(c, err)
	}
	return h.sendPDF(c, inv)
}

// DownloadPDF regenera el PDF de un snapshot ya archivado.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	inv, err := h.generateUC.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return h.sendPDF(c, inv)
}

func (h *InvoiceHandler) sendPDF(c *fiber.Ctx, inv *entity.Invoice) error {
	data, filename, err := h.pdfUC.Export(c.Context(), inv)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Share godoc
// @Summary      Mensaje y enlace de WhatsApp
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShareRequest  true  "Formulario + teléfono opcional"
// @Success      200   {object}  dto.ShareResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/invoices/whatsapp [post]
func (h *InvoiceHandler) Share(c *fiber.Ctx) error {
	var in dto.ShareRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.shareUC.Share(in, h.language(c, in.Language))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// mapError traduce errores de dominio a códigos HTTP.
func (h *InvoiceHandler) mapError(c *fiber.Ctx, err error) error {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:   "VALIDATION",
			Errors: fieldErrs,
		})
	}
	switch {
	case errors.Is(err, domain.ErrExportBusy):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXPORT_BUSY", Message: "ya hay una exportación en curso"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrArchiveDisabled):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "ARCHIVE_DISABLED", Message: "el archivo histórico no está configurado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
