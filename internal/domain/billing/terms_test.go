package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// trEN imita el catálogo inglés para las claves que usa el formateador.
func trEN(key string) string {
	switch key {
	case "advancePercentage":
		return "advance"
	case "deliveryPercentage":
		return "on delivery"
	}
	return key
}

func TestFormatTerms_SinAnticipoDevuelveVacio(t *testing.T) {
	f := entity.NewFormState("USD")
	got := billing.FormatTerms(f, decimal.NewFromInt(200), trEN)
	assert.Equal(t, "", got)
}

// Sin entrega incluida el texto trae exactamente un paréntesis monetario:
// el del anticipo.
func TestFormatTerms_SoloAnticipo(t *testing.T) {
	f := entity.NewFormState("USD")
	f.Advance = entity.PaymentPortion{Kind: entity.PortionPercentage, Percent: "25", Amount: "50.00"}

	got := billing.FormatTerms(f, decimal.NewFromInt(200), trEN)

	assert.Equal(t, "25% advance ($50.00)", got)
	assert.Equal(t, 1, strings.Count(got, "("), "un solo paréntesis monetario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: total=200, anticipo 25% por porcentaje, entrega
// incluida sin especificar ⇒ el segundo segmento muestra el remanente
// 150.00 / 75.0%.
// ──────────────────────────────────────────────────────────────────────────────
func TestFormatTerms_RestoImplicito(t *testing.T) {
	f := entity.NewFormState("USD")
	f.Advance = entity.PaymentPortion{Kind: entity.PortionPercentage, Percent: "25", Amount: "50.00"}
	f.IncludeDelivery = true

	got := billing.FormatTerms(f, decimal.NewFromInt(200), trEN)

	assert.Equal(t, "25% advance ($50.00), 75.0% on delivery ($150.00)", got)
}

// La suma de los montos de ambos segmentos debe reconstruir el total dentro
// de 0.01 unidades monetarias.
func TestFormatTerms_RestoMasAnticipoIgualTotal(t *testing.T) {
	totals := []decimal.Decimal{decimal.NewFromInt(200), decimal.NewFromFloat(149.99), decimal.NewFromFloat(73.33)}
	for _, total := range totals {
		f := entity.NewFormState("USD")
		f.Advance = billing.ApplyEdit(entity.PaymentPortion{Kind: entity.PortionPercentage}, "33.3", total)
		f.IncludeDelivery = true

		got := billing.FormatTerms(f, total, trEN)
		amounts := extractAmounts(t, got)
		require.Len(t, amounts, 2, "anticipo + resto: %q", got)

		sum := amounts[0].Add(amounts[1])
		diff := sum.Sub(total).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"total=%s: %s + %s = %s", total, amounts[0], amounts[1], sum)
	}
}

// Entrega totalmente especificada: se usa tal cual, incluso si los
// porcentajes suman más de 100 (sobreespecificación aceptada en silencio).
func TestFormatTerms_EntregaExplicitaSinValidarSuma(t *testing.T) {
	f := entity.NewFormState("EUR")
	f.Advance = entity.PaymentPortion{Kind: entity.PortionPercentage, Percent: "60", Amount: "120.00"}
	f.Delivery = entity.PaymentPortion{Kind: entity.PortionPercentage, Percent: "60", Amount: "120.00"}
	f.IncludeDelivery = true

	got := billing.FormatTerms(f, decimal.NewFromInt(200), trEN)

	assert.Equal(t, "60% advance (€120.00), 60% on delivery (€120.00)", got)
}

func TestFormatTerms_AnticipoPorMonto(t *testing.T) {
	f := entity.NewFormState("USD")
	f.Advance = entity.PaymentPortion{Kind: entity.PortionAmount, Percent: "40.0", Amount: "80"}

	got := billing.FormatTerms(f, decimal.NewFromInt(200), trEN)

	assert.Equal(t, "40.0% advance ($80.00)", got)
}

// Total cero: el valor tecleado se muestra sin paréntesis monetario.
func TestFormatTerms_TotalCeroOmiteParentesis(t *testing.T) {
	f := entity.NewFormState("USD")
	f.Advance = entity.PaymentPortion{Kind: entity.PortionPercentage, Percent: "10"}

	got := billing.FormatTerms(f, decimal.Zero, trEN)

	assert.Equal(t, "10% advance", got)
	assert.NotContains(t, got, "(")
}

// extractAmounts saca los montos "$123.45" de los paréntesis del texto.
func extractAmounts(t *testing.T, s string) []decimal.Decimal {
	t.Helper()
	var out []decimal.Decimal
	for _, part := range strings.Split(s, "(")[1:] {
		end := strings.Index(part, ")")
		require.Greater(t, end, 0)
		raw := strings.TrimLeft(part[:end], "$€£CAMD")
		d, err := decimal.NewFromString(raw)
		require.NoError(t, err, "monto ilegible en %q", part)
		out = append(out, d)
	}
	return out
}
