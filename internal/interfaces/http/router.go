package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GenerateUC *appbilling.GenerateInvoiceUseCase
	PDFUC      *appbilling.PDFUseCase
	ShareUC    *appbilling.ShareUseCase
	DraftUC    *appbilling.DraftUseCase
	SettingsUC *usecase.SettingsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Documentos
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.GenerateUC, deps.PDFUC, deps.ShareUC, deps.SettingsUC)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/portion", invoiceHandler.EditPortion)
	invoices.Post("/pdf", invoiceHandler.ExportPDF)
	invoices.Post("/whatsapp", invoiceHandler.Share)
	invoices.Post("/", invoiceHandler.Generate)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Borrador autosalvado
	draft := api.Group("/draft")
	draftHandler := NewDraftHandler(deps.DraftUC)
	draft.Get("/", draftHandler.Get)
	draft.Put("/", draftHandler.Save)
	draft.Delete("/", draftHandler.Clear)

	// Preferencias
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.SaveSettings)
	api.Put("/company", settingsHandler.SaveCompany)
	api.Put("/language", settingsHandler.SaveLanguage)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
