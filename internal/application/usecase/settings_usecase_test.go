package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/usecase"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/storage"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/logger"
)

func newSettingsUC(store *storage.MemoryStore) *usecase.SettingsUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewSettingsUseCase(store, log, "USD", "en")
}

func TestGetSettings_DefaultsEnDespliegueLimpio(t *testing.T) {
	uc := newSettingsUC(storage.NewMemoryStore())

	s := uc.GetSettings()
	assert.Equal(t, "professional", s.Theme)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, entity.DocumentInvoice, s.DocumentType)
	assert.True(t, s.ShowLogo)
}

func TestSettings_RoundTrip(t *testing.T) {
	uc := newSettingsUC(storage.NewMemoryStore())

	in := entity.InvoiceSettings{
		Theme:        "modern",
		Currency:     "MAD",
		DocumentType: entity.DocumentQuote,
		CustomFooter: "Gracias por su preferencia",
		CompactMode:  true,
	}
	require.NoError(t, uc.SaveSettings(in))

	out := uc.GetSettings()
	assert.Equal(t, in, out)
}

func TestSaveSettings_NormalizaTemaInvalido(t *testing.T) {
	uc := newSettingsUC(storage.NewMemoryStore())

	require.NoError(t, uc.SaveSettings(entity.InvoiceSettings{Theme: "neon", DocumentType: "RECIBO"}))

	s := uc.GetSettings()
	assert.Equal(t, "professional", s.Theme)
	assert.Equal(t, entity.DocumentInvoice, s.DocumentType)
}

func TestGetSettings_CorruptoCaeADefaults(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set("invoiceSettings", []byte("][")))

	uc := newSettingsUC(store)
	s := uc.GetSettings()
	assert.Equal(t, "professional", s.Theme)

	_, still, err := store.Get("invoiceSettings")
	require.NoError(t, err)
	assert.False(t, still, "el valor corrupto se descarta")
}

func TestCompany_RoundTrip(t *testing.T) {
	uc := newSettingsUC(storage.NewMemoryStore())

	in := entity.CompanyInfo{Name: "Atlas Studio", Email: "hola@atlas.test", Phone: "+212 600 000 000"}
	require.NoError(t, uc.SaveCompany(in))
	assert.Equal(t, in, uc.GetCompany())
}

func TestLanguage_RoundTripYNormalizacion(t *testing.T) {
	uc := newSettingsUC(storage.NewMemoryStore())

	assert.Equal(t, "en", uc.GetLanguage(), "default sin valor guardado")

	require.NoError(t, uc.SaveLanguage("fr"))
	assert.Equal(t, "fr", uc.GetLanguage())

	// código no soportado se resuelve contra los catálogos (fr-CA → fr)
	require.NoError(t, uc.SaveLanguage("fr-CA"))
	assert.Equal(t, "fr", uc.GetLanguage())
}
