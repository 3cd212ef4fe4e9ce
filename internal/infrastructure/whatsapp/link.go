// Package whatsapp arma enlaces de compartir wa.me. La codificación es la
// estándar de net/url; el mensaje llega ya armado desde el dominio.
package whatsapp

import (
	"net/url"
	"strings"
)

// LinkBuilder construye URLs wa.me.
type LinkBuilder struct{}

// NewLinkBuilder construye el adaptador.
func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{}
}

// BuildLink arma https://wa.me/<phone>?text=<mensaje>. El teléfono son
// dígitos E.164 sin '+'; vacío produce un enlace sin destinatario (WhatsApp
// pide elegir el contacto al abrirlo).
func (b *LinkBuilder) BuildLink(phone, message string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + sanitizePhone(phone),
	}
	q := url.Values{}
	q.Set("text", message)
	u.RawQuery = q.Encode()
	if phone == "" {
		u.Path = "/"
	}
	return u.String()
}

// sanitizePhone deja solo dígitos ('+' y separadores fuera).
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
