package usecase

import (
	"encoding/json"
	"strings"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/repository"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/logger"
)

// Claves del almacén clave-valor para preferencias.
const (
	keySettings = "invoiceSettings"
	keyCompany  = "companyInfo"
	keyLanguage = "selectedLanguage"
)

// Temas de documento soportados por el renderizador PDF.
var validThemes = map[string]bool{
	"professional": true,
	"modern":       true,
	"minimal":      true,
	"colorful":     true,
}

// SettingsUseCase administra las preferencias de presentación, el perfil de
// empresa y el idioma activo. A diferencia del borrador, aquí cada cambio se
// escribe de inmediato (sin debounce): son ediciones poco frecuentes.
type SettingsUseCase struct {
	store           repository.Store
	log             *logger.Logger
	defaultCurrency string
	defaultLanguage string
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.Store, log *logger.Logger, defaultCurrency, defaultLanguage string) *SettingsUseCase {
	return &SettingsUseCase{
		store:           store,
		log:             log,
		defaultCurrency: defaultCurrency,
		defaultLanguage: defaultLanguage,
	}
}

// DefaultSettings preferencias iniciales de un despliegue limpio.
func (uc *SettingsUseCase) DefaultSettings() entity.InvoiceSettings {
	return entity.InvoiceSettings{
		Theme:        "professional",
		Currency:     uc.defaultCurrency,
		ShowLogo:     true,
		DocumentType: entity.DocumentInvoice,
	}
}

// GetSettings lee las preferencias; corruptas o ausentes → defaults.
func (uc *SettingsUseCase) GetSettings() entity.InvoiceSettings {
	var s entity.InvoiceSettings
	if !uc.read(keySettings, &s) {
		return uc.DefaultSettings()
	}
	if !validThemes[s.Theme] {
		s.Theme = "professional"
	}
	if s.DocumentType != entity.DocumentInvoice && s.DocumentType != entity.DocumentQuote {
		s.DocumentType = entity.DocumentInvoice
	}
	if s.Currency == "" {
		s.Currency = uc.defaultCurrency
	}
	return s
}

// SaveSettings persiste las preferencias, normalizando tema y tipo de
// documento a valores soportados.
func (uc *SettingsUseCase) SaveSettings(s entity.InvoiceSettings) error {
	if !validThemes[s.Theme] {
		s.Theme = "professional"
	}
	if s.DocumentType != entity.DocumentInvoice && s.DocumentType != entity.DocumentQuote {
		s.DocumentType = entity.DocumentInvoice
	}
	return uc.write(keySettings, s)
}

// GetCompany lee el perfil del emisor; corrupto o ausente → vacío.
func (uc *SettingsUseCase) GetCompany() entity.CompanyInfo {
	var c entity.CompanyInfo
	if !uc.read(keyCompany, &c) {
		return entity.CompanyInfo{}
	}
	return c
}

// SaveCompany persiste el perfil del emisor.
func (uc *SettingsUseCase) SaveCompany(c entity.CompanyInfo) error {
	return uc.write(keyCompany, c)
}

// GetLanguage devuelve el idioma activo (en, fr, ar).
func (uc *SettingsUseCase) GetLanguage() string {
	var lang string
	if !uc.read(keyLanguage, &lang) {
		return uc.defaultLanguage
	}
	switch strings.TrimSpace(lang) {
	case "en", "fr", "ar":
		return strings.TrimSpace(lang)
	}
	return uc.defaultLanguage
}

// SaveLanguage persiste el idioma activo; valores no soportados se resuelven
// contra los catálogos disponibles.
func (uc *SettingsUseCase) SaveLanguage(lang string) error {
	switch lang {
	case "en", "fr", "ar":
	default:
		lang = i18n.Match(lang)
	}
	return uc.write(keyLanguage, lang)
}

// read deserializa una clave; false si no existe o el JSON está corrupto (lo
// corrupto se descarta para que la próxima lectura parta de defaults).
func (uc *SettingsUseCase) read(key string, out any) bool {
	data, ok, err := uc.store.Get(key)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("ajustes: lectura fallida")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("ajustes: JSON corrupto, se descarta")
		_ = uc.store.Delete(key)
		return false
	}
	return true
}

func (uc *SettingsUseCase) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return uc.store.Set(key, data)
}
