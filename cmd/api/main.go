package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/usecase"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/repository"
	infrapdf "github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/pdf"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/postgres"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/storage"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/whatsapp"
	httpRouter "github.com/KasbouyaMohammed/micro-invoice-app/internal/interfaces/http"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/config"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén clave-valor (borrador, ajustes, perfil, idioma)
	store := newStore(cfg, log)

	// Archivo histórico opcional: solo con DATABASE_URL configurado
	var invoiceRepo repository.InvoiceRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		invoiceRepo = postgres.NewInvoiceRepository(pool)
		log.Info().Msg("archivo histórico de facturas habilitado")
	} else {
		log.Info().Msg("sin DATABASE_URL: archivo histórico deshabilitado")
	}

	settingsUC := usecase.NewSettingsUseCase(store, log, cfg.Invoice.DefaultCurrency, cfg.Invoice.DefaultLanguage)
	generateUC := appbilling.NewGenerateInvoiceUseCase(invoiceRepo, &appbilling.SettingsProvider{
		Settings: settingsUC.GetSettings,
		Company:  settingsUC.GetCompany,
	}, log)
	draftUC := appbilling.NewDraftUseCase(store, log, cfg.Invoice.AutosaveDebounce, cfg.Invoice.DefaultCurrency)
	pdfUC := appbilling.NewPDFUseCase(infrapdf.NewMarotoPDFGenerator())
	shareUC := appbilling.NewShareUseCase(generateUC, whatsapp.NewLinkBuilder())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación de PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Micro Invoice API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		GenerateUC: generateUC,
		PDFUC:      pdfUC,
		ShareUC:    shareUC,
		DraftUC:    draftUC,
		SettingsUC: settingsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Un borrador con escritura pendiente no debe perderse al apagar
	draftUC.Flush()

	log.Info().Msg("aplicación detenida")
}

// newStore elige la implementación del almacén clave-valor según configuración.
func newStore(cfg *config.Config, log *logger.Logger) repository.Store {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore()
	default:
		s, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			// un archivo corrupto no impide arrancar: se descarta y se
			// continúa con un almacén limpio en la misma ruta
			log.Warn().Err(err).Str("path", cfg.Storage.Path).Msg("almacén ilegible, se reinicia vacío")
			if rmErr := os.Remove(cfg.Storage.Path); rmErr != nil {
				log.Fatal().Err(rmErr).Msg("no se pudo reiniciar el almacén")
			}
			s, err = storage.NewFileStore(cfg.Storage.Path)
			if err != nil {
				log.Fatal().Err(err).Msg("abrir almacén")
			}
		}
		return s
	}
}
