// Package billing contiene el motor de cálculo del generador: agregación de
// líneas, resolución de impuesto y total, conciliación de porciones de pago y
// generación de los textos derivados. Todo es puro: sin I/O, sin estado.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
)

var hundred = decimal.NewFromInt(100)

// Subtotal suma cantidad × precio unitario sobre todas las líneas.
// Entradas ilegibles valen cero; el resultado nunca es negativo.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		qty := money.ParseAmount(it.Quantity)
		price := money.ParseAmount(it.UnitPrice)
		total = total.Add(qty.Mul(price))
	}
	return total
}

// PerLineTaxTotal suma el impuesto propio de cada línea:
// monto de línea × tasa/100.
func PerLineTaxTotal(items []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		amount := money.ParseAmount(it.Quantity).Mul(money.ParseAmount(it.UnitPrice))
		rate := money.ParseAmount(it.TaxRate)
		total = total.Add(amount.Mul(rate).Div(hundred))
	}
	return total
}

// OverallTax calcula la tasa global aplicada al subtotal.
func OverallTax(subtotal decimal.Decimal, rateRaw string) decimal.Decimal {
	return subtotal.Mul(money.ParseAmount(rateRaw)).Div(hundred)
}

// TaxAmount resuelve el impuesto activo según el modo. Cambiar de modo no
// altera las tasas guardadas de la otra rama.
func TaxAmount(f entity.FormState) decimal.Decimal {
	sub := Subtotal(f.LineItems)
	if f.TaxMode() == entity.TaxModeOverall {
		return OverallTax(sub, f.OverallTaxRate)
	}
	return PerLineTaxTotal(f.LineItems)
}

// Total resuelve el total autoritativo: el total manual cuando ese modo está
// activo (ilegible → 0, se reporta en la validación de envío), si no
// subtotal + impuesto activo. Toda la aritmética aguas abajo (porciones de
// pago, términos, mensaje) consume esta cifra y ninguna otra.
func Total(f entity.FormState) decimal.Decimal {
	if f.TotalMode() == entity.TotalModeManual {
		return money.ParseAmount(f.ManualTotal)
	}
	return Subtotal(f.LineItems).Add(TaxAmount(f))
}

// Breakdown es el desglose completo que consume la vista previa.
type Breakdown struct {
	Subtotal   decimal.Decimal
	PerLineTax decimal.Decimal
	OverallTax decimal.Decimal
	TaxAmount  decimal.Decimal // el impuesto activo según el modo
	Total      decimal.Decimal
	TaxMode    entity.TaxMode
	TotalMode  entity.TotalMode
}

// Compute calcula el desglose entero de una sola pasada.
func Compute(f entity.FormState) Breakdown {
	sub := Subtotal(f.LineItems)
	perLine := PerLineTaxTotal(f.LineItems)
	overall := OverallTax(sub, f.OverallTaxRate)

	tax := perLine
	if f.TaxMode() == entity.TaxModeOverall {
		tax = overall
	}
	total := sub.Add(tax)
	if f.TotalMode() == entity.TotalModeManual {
		total = money.ParseAmount(f.ManualTotal)
	}
	return Breakdown{
		Subtotal:   sub,
		PerLineTax: perLine,
		OverallTax: overall,
		TaxAmount:  tax,
		Total:      total,
		TaxMode:    f.TaxMode(),
		TotalMode:  f.TotalMode(),
	}
}
