package billing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
)

// recordingLinks guarda los argumentos con que se pidió el enlace.
type recordingLinks struct {
	phone   string
	message string
}

func (l *recordingLinks) BuildLink(phone, message string) string {
	l.phone = phone
	l.message = message
	return "https://wa.me/" + phone
}

func newShareUC(links appbilling.LinkBuilder) *appbilling.ShareUseCase {
	gen := appbilling.NewGenerateInvoiceUseCase(nil, testSettings(), testLogger())
	return appbilling.NewShareUseCase(gen, links)
}

func TestShare_MensajeYEnlace(t *testing.T) {
	links := &recordingLinks{}
	uc := newShareUC(links)

	resp, err := uc.Share(dto.ShareRequest{Form: validForm(), Phone: "212600000000"}, "en")
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "*Invoice for Acme Corp*")
	assert.Contains(t, resp.Message, "• 2× Diseño de marca – $100.00")
	assert.Contains(t, resp.Message, "*Total TTC:* $110.00")
	assert.Equal(t, resp.Message, links.message, "el enlace se arma con el mismo mensaje")
	assert.Equal(t, "212600000000", links.phone)
	assert.Equal(t, "https://wa.me/212600000000", resp.Link)
}

func TestShare_PreambuloAntesDelMensaje(t *testing.T) {
	uc := newShareUC(&recordingLinks{})

	resp, err := uc.Share(dto.ShareRequest{Form: validForm(), Preamble: "  Hola, aquí va la factura:  "}, "en")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Message, "Hola, aquí va la factura:\n\n*Invoice for"))
}

func TestShare_FormularioInvalido(t *testing.T) {
	uc := newShareUC(&recordingLinks{})

	f := validForm()
	f.ClientName = ""
	_, err := uc.Share(dto.ShareRequest{Form: f}, "en")
	require.Error(t, err)

	var fieldErrs domain.FieldErrors
	assert.True(t, errors.As(err, &fieldErrs))
}

// Compartir no emite factura: el mensaje incluye el anticipo reconciliado
// contra el total, sin pasar por el archivo.
func TestShare_ReconciliaPorciones(t *testing.T) {
	uc := newShareUC(&recordingLinks{})

	f := validForm()
	f.Advance.Percent = "40"

	resp, err := uc.Share(dto.ShareRequest{Form: f}, "en")
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "*Advance Payment:* 40%")
}
