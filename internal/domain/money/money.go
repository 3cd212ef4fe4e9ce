// Package money concentra el formateo y parseo monetario del generador.
// Los campos del formulario son texto libre mientras se edita, así que el
// parseo es tolerante: entradas ilegibles o negativas degradan a cero en vez
// de fallar, y la vista previa nunca muestra un valor no numérico.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// símbolos por código ISO soportado; cualquier otro código cae en "$".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
	"MAD": "MAD",
}

// Symbol devuelve el símbolo de la moneda dada.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return "$"
}

// Format produce "{símbolo}{monto a 2 decimales}", ej. "$1234.50".
func Format(amount decimal.Decimal, code string) string {
	return Symbol(code) + amount.StringFixed(2)
}

// FormatGrouped produce el monto con separador de miles, ej. "$1,234.50".
// Se usa en el mensaje para compartir, donde el total va en formato "bonito".
// Agrupa sobre los dígitos del propio decimal; pasar por float64 perdería
// precisión en montos fuera de su mantisa.
func FormatGrouped(amount decimal.Decimal, code string) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return Symbol(code) + sign + b.String() + frac
}

// ParseAmount interpreta un campo numérico del formulario. Vacío, ilegible o
// negativo resultan en cero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sanitize reduce una entrada cruda a dígitos y un único punto decimal,
// igual que el filtrado en vivo de los campos de porcentaje/monto.
func Sanitize(raw string) string {
	var b strings.Builder
	dot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
