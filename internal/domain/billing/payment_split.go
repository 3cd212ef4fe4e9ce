package billing

import (
	"github.com/shopspring/decimal"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
)

// Conciliador porcentaje↔monto de una porción de pago (anticipo o entrega).
// Cada porción es una máquina de dos estados: el Kind marca el campo que
// manda y el otro siempre se rederiva contra el total autoritativo.
//
// Reglas de redondeo: montos derivados a 2 decimales, porcentajes derivados a
// 1 decimal. Con total ≤ 0 no hay derivación posible y el campo dependiente
// queda vacío (nunca se divide por cero).

// ApplyEdit procesa una edición cruda sobre el campo que manda de la porción:
// sanea la entrada, la guarda y deriva el campo contrario.
func ApplyEdit(p entity.PaymentPortion, raw string, total decimal.Decimal) entity.PaymentPortion {
	clean := money.Sanitize(raw)
	if p.Kind == entity.PortionAmount {
		p.Amount = clean
		p.Percent = ""
		if clean != "" && total.IsPositive() {
			p.Percent = money.ParseAmount(clean).Mul(hundred).Div(total).StringFixed(1)
		}
		return p
	}
	p.Percent = clean
	p.Amount = ""
	if clean != "" && total.IsPositive() {
		p.Amount = money.ParseAmount(clean).Mul(total).Div(hundred).StringFixed(2)
	}
	return p
}

// SwitchKind cambia el campo que manda sin borrar los valores guardados; solo
// afecta cuál campo es autoritativo en la próxima edición.
func SwitchKind(p entity.PaymentPortion, kind entity.PortionKind) entity.PaymentPortion {
	p.Kind = kind
	return p
}

// Reconcile rederiva el campo dependiente de una porción contra un total
// nuevo, conservando intacto el campo que manda. Se usa cuando cambia el
// total (editar líneas, alternar modo de impuesto o de total).
func Reconcile(p entity.PaymentPortion, total decimal.Decimal) entity.PaymentPortion {
	if p.Kind == entity.PortionAmount {
		return ApplyEdit(p, p.Amount, total)
	}
	return ApplyEdit(p, p.Percent, total)
}

// Resolve entrega el par (porcentaje, monto) que usa el formateador de
// términos. ok es false cuando el campo que manda está vacío. El porcentaje
// mostrado es el valor tecleado cuando manda el porcentaje, o el derivado
// cuando manda el monto; el monto siempre se recalcula contra el total.
func Resolve(p entity.PaymentPortion, total decimal.Decimal) (percent, amount decimal.Decimal, ok bool) {
	switch p.Kind {
	case entity.PortionAmount:
		if p.Amount == "" {
			return decimal.Zero, decimal.Zero, false
		}
		amount = money.ParseAmount(p.Amount)
		if total.IsPositive() {
			percent = amount.Mul(hundred).Div(total)
		}
		return percent, amount, true
	default:
		if p.Percent == "" {
			return decimal.Zero, decimal.Zero, false
		}
		percent = money.ParseAmount(p.Percent)
		amount = percent.Mul(total).Div(hundred)
		return percent, amount, true
	}
}
