package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
)

func TestTranslate_IdiomaActivo(t *testing.T) {
	assert.Equal(t, "d'acompte", i18n.Translate("fr", "advancePercentage"))
	assert.Equal(t, "مقدم", i18n.Translate("ar", "advancePercentage"))
	assert.Equal(t, "advance", i18n.Translate("en", "advancePercentage"))
}

// Idioma desconocido cae al inglés; clave desconocida cae a la clave cruda.
func TestTranslate_CadenaDeRespaldo(t *testing.T) {
	assert.Equal(t, "advance", i18n.Translate("de", "advancePercentage"))
	assert.Equal(t, "noSuchKey", i18n.Translate("fr", "noSuchKey"))
	assert.Equal(t, "noSuchKey", i18n.Translate("", "noSuchKey"))
}

func TestTranslator_LigadoAlIdioma(t *testing.T) {
	tr := i18n.Translator("fr")
	assert.Equal(t, "à la livraison", tr("deliveryPercentage"))
}

func TestMatch_AcceptLanguage(t *testing.T) {
	assert.Equal(t, "fr", i18n.Match("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, "ar", i18n.Match("ar"))
	assert.Equal(t, "en", i18n.Match(""))
	assert.Equal(t, "en", i18n.Match("pt-BR"))
	assert.Equal(t, "en", i18n.Match(";;;"))
}
