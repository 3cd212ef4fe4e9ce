package billing

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
)

// BuildShareMessage arma el texto plano del mensaje para compartir (formato
// WhatsApp: *negritas* y viñetas). La codificación URL no ocurre aquí; es
// asunto del transporte.
//
// Estructura: encabezado con el cliente, lista de artículos (o descripción de
// servicio única), total con separador de miles, fecha de vencimiento
// dd/mm/aaaa, líneas de anticipo/entrega si existen y cierre de cortesía.
func BuildShareMessage(inv entity.Invoice, tr TranslateFunc) string {
	sym := money.Symbol(inv.Currency)
	totalText := money.FormatGrouped(inv.GrandTotal, inv.Currency)

	var b strings.Builder
	b.WriteString("*" + tr("invoiceFor") + " " + titleCase(inv.ClientName) + "*\n\n")

	if hasBillableLine(inv.LineItems) {
		b.WriteString("*" + tr("whatsappItems") + "*\n")
		for _, it := range inv.LineItems {
			qty := money.ParseAmount(it.Quantity)
			price := money.ParseAmount(it.UnitPrice)
			if it.Description == "" && price.IsZero() {
				continue // fila en blanco del formulario
			}
			lineTotal := qty.Mul(price)
			b.WriteString("• " + qty.String() + "× " + it.Description +
				" – " + sym + lineTotal.StringFixed(2) + "\n")
		}
		b.WriteString("\n*" + tr("whatsappTotal") + "* " + totalText + "\n")
	} else {
		b.WriteString("*" + tr("service") + ":* " + inv.ServiceDescription + "\n")
		b.WriteString("*" + tr("whatsappTotal") + "* " + totalText + "\n")
	}

	b.WriteString("*" + tr("due") + "* " + formatDueDate(inv.DueDate) + "\n")

	if line := portionLine(inv.Advance, inv.Currency, tr("advancePayment")); line != "" {
		b.WriteString(line)
	}
	if inv.IncludeDelivery {
		if line := portionLine(inv.Delivery, inv.Currency, tr("deliveryPayment")); line != "" {
			b.WriteString(line)
		}
	}

	b.WriteString("\n*" + tr("thankYou") + "*")
	return b.String()
}

// portionLine produce "*Etiqueta* 40%\n" o "*Etiqueta* $80.00\n" según el
// campo que manda; vacía si la porción no tiene valor.
func portionLine(p entity.PaymentPortion, currency, label string) string {
	if p.Kind == entity.PortionAmount && p.Amount != "" {
		return "*" + label + "* " + money.FormatGrouped(money.ParseAmount(p.Amount), currency) + "\n"
	}
	if p.Percent != "" {
		return "*" + label + "* " + p.Percent + "%\n"
	}
	return ""
}

func hasBillableLine(items []entity.LineItem) bool {
	for _, it := range items {
		if it.Description != "" || money.ParseAmount(it.UnitPrice).IsPositive() {
			return true
		}
	}
	return false
}

// formatDueDate convierte YYYY-MM-DD a dd/mm/aaaa; si no parsea, devuelve el
// texto tal cual.
func formatDueDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
