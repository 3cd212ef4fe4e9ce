package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/whatsapp"
)

func TestBuildLink_ConTelefono(t *testing.T) {
	b := whatsapp.NewLinkBuilder()

	link := b.BuildLink("+212 600-000-000", "*Invoice for Acme*\nTotal: $110.00")

	require.True(t, strings.HasPrefix(link, "https://wa.me/212600000000?"), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "*Invoice for Acme*\nTotal: $110.00", parsed.Query().Get("text"),
		"el mensaje sobrevive el round trip de codificación")
}

func TestBuildLink_SinTelefono(t *testing.T) {
	b := whatsapp.NewLinkBuilder()

	link := b.BuildLink("", "hola")
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "hola", parsed.Query().Get("text"))
}

// Caracteres reservados y no-ASCII quedan en manos de net/url, sin escapes
// artesanales.
func TestBuildLink_CodificacionEstandar(t *testing.T) {
	b := whatsapp.NewLinkBuilder()

	link := b.BuildLink("1555", "50% & más: €120")
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "50% & más: €120", parsed.Query().Get("text"))
}
