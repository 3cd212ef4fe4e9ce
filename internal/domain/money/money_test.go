package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
)

func TestSymbol_MonedasSoportadas(t *testing.T) {
	cases := map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"CAD": "C$",
		"AUD": "A$",
		"MAD": "MAD",
	}
	for code, want := range cases {
		assert.Equal(t, want, money.Symbol(code), code)
	}
}

func TestSymbol_CodigoDesconocidoCaeEnDolar(t *testing.T) {
	assert.Equal(t, "$", money.Symbol("XYZ"))
	assert.Equal(t, "$", money.Symbol(""))
}

func TestFormat_DosDecimalesSiempre(t *testing.T) {
	assert.Equal(t, "€50.00", money.Format(decimal.NewFromInt(50), "EUR"))
	assert.Equal(t, "$0.10", money.Format(decimal.NewFromFloat(0.1), "USD"))
}

func TestFormatGrouped_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$1,234.50", money.FormatGrouped(decimal.NewFromFloat(1234.5), "USD"))
	assert.Equal(t, "MAD12,000.00", money.FormatGrouped(decimal.NewFromInt(12000), "MAD"))
	assert.Equal(t, "$999.99", money.FormatGrouped(decimal.NewFromFloat(999.99), "USD"))
}

// El agrupado es exacto también fuera de la mantisa de float64.
func TestFormatGrouped_MontosFueraDeFloat64(t *testing.T) {
	big, err := decimal.NewFromString("9007199254740993.12")
	assert.NoError(t, err)
	assert.Equal(t, "$9,007,199,254,740,993.12", money.FormatGrouped(big, "USD"))
}

// ParseAmount nunca falla: texto ilegible o negativo degrada a cero para que
// la vista previa en vivo no muestre valores no numéricos.
func TestParseAmount_Tolerante(t *testing.T) {
	assert.True(t, money.ParseAmount("12.5").Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, money.ParseAmount("").IsZero())
	assert.True(t, money.ParseAmount("abc").IsZero())
	assert.True(t, money.ParseAmount("12abc").IsZero())
	assert.True(t, money.ParseAmount("-5").IsZero())
	assert.True(t, money.ParseAmount(" 7 ").Equal(decimal.NewFromInt(7)))
}

func TestSanitize_SoloDigitosYUnPunto(t *testing.T) {
	assert.Equal(t, "25.5", money.Sanitize("25.5%"))
	assert.Equal(t, "1050", money.Sanitize("1,050"))
	assert.Equal(t, "12.34", money.Sanitize("12.3.4"))
	assert.Equal(t, "", money.Sanitize("abc"))
}
