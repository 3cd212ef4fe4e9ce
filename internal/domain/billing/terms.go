package billing

import (
	"github.com/shopspring/decimal"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
)

// TranslateFunc resuelve una clave de localización al idioma activo. El motor
// no ramifica por idioma: recibe la función ya ligada al idioma en uso.
type TranslateFunc func(key string) string

// FormatTerms arma el texto de condiciones de pago a partir de la porción de
// anticipo, la de entrega y el total autoritativo, ej:
//
//	"25% advance ($50.00), 75.0% on delivery ($150.00)"
//
// Los pares porcentaje/monto salen de Resolve. Segmentos:
//   - anticipo: siempre que tenga valor; muestra el porcentaje tecleado (o el
//     derivado a 1 decimal cuando manda el monto) y el monto entre paréntesis.
//     Con total ≤ 0 el paréntesis monetario se omite.
//   - entrega explícita: solo si IncludeDelivery y ambos campos poblados.
//   - resto implícito: con IncludeDelivery pero entrega sin poblar, se anexa
//     un segmento con la etiqueta de entrega y el remanente total − anticipo.
//
// Devuelve cadena vacía si aún no se ingresó ningún anticipo.
func FormatTerms(f entity.FormState, total decimal.Decimal, tr TranslateFunc) string {
	_, advAmount, ok := Resolve(f.Advance, total)
	if !ok {
		return ""
	}

	// Con el monto al mando y sin total positivo no hay porcentaje coherente
	// que mostrar todavía.
	if f.Advance.Kind == entity.PortionAmount && !total.IsPositive() {
		return ""
	}
	advText := portionText(f.Advance, f.Currency, total, tr("advancePercentage"))

	if !f.IncludeDelivery {
		return advText
	}

	// Entrega especificada por el usuario: se formatea igual que el anticipo.
	// La suma anticipo% + entrega% puede exceder 100; se acepta tal cual.
	if f.Delivery.Percent != "" && f.Delivery.Amount != "" {
		return advText + ", " + portionText(f.Delivery, f.Currency, total, tr("deliveryPercentage"))
	}

	// Entrega implícita: lo que quede después del anticipo.
	if !total.IsPositive() {
		return advText
	}
	remaining := total.Sub(advAmount)
	remainingPct := remaining.Mul(hundred).Div(total)
	return advText + ", " + remainingPct.StringFixed(1) + "% " +
		tr("deliveryPercentage") + " (" + money.Format(remaining, f.Currency) + ")"
}

// portionText produce "{pct}% {etiqueta} ({monto})". Con el porcentaje al
// mando se muestra el valor tecleado tal cual; con el monto al mando, el
// porcentaje derivado a 1 decimal. El paréntesis monetario solo aparece con
// total positivo.
func portionText(p entity.PaymentPortion, currency string, total decimal.Decimal, label string) string {
	pct, amount, _ := Resolve(p, total)

	pctText := p.Percent
	if p.Kind == entity.PortionAmount {
		pctText = pct.StringFixed(1)
	}

	out := pctText + "% " + label
	if total.IsPositive() {
		out += " (" + money.Format(amount, currency) + ")"
	}
	return out
}
