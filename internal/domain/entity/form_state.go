package entity

// Modos de cálculo del formulario. Los modos se derivan de los booleanos del
// FormState; los valores crudos de ambas ramas se conservan siempre para que
// desactivar y reactivar un modo restaure la entrada previa del usuario.

// TaxMode indica qué impuesto aplica al subtotal.
type TaxMode string

const (
	TaxModePerLine TaxMode = "per_line" // suma de impuestos por línea
	TaxModeOverall TaxMode = "overall"  // tasa global sobre el subtotal
)

// TotalMode indica de dónde sale el total autoritativo.
type TotalMode string

const (
	TotalModeComputed TotalMode = "computed" // subtotal + impuesto activo
	TotalModeManual   TotalMode = "manual"   // total ingresado por el operador
)

// PortionKind indica cuál campo de una porción de pago es el autoritativo.
type PortionKind string

const (
	PortionPercentage PortionKind = "percentage"
	PortionAmount     PortionKind = "amount"
)

// LineItem es una fila facturable. Los campos numéricos se mantienen como
// texto libre mientras se edita; el parseo tolerante vive en el paquete money.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	TaxRate     string `json:"tax,omitempty"`
}

// PaymentPortion es una tajada del total (anticipo o entrega). Kind marca el
// campo que el usuario editó directamente; el otro siempre es derivado.
type PaymentPortion struct {
	Kind    PortionKind `json:"type"`
	Percent string      `json:"percent"`
	Amount  string      `json:"amount"`
}

// FormState es el borrador de factura en edición. Es el registro que se
// persiste (con debounce) en el almacén clave-valor y el input de todo el
// motor de cálculo.
type FormState struct {
	ClientName         string         `json:"clientName"`
	ServiceDescription string         `json:"serviceDescription,omitempty"`
	DueDate            string         `json:"dueDate"` // YYYY-MM-DD
	LineItems          []LineItem     `json:"lineItems"`
	Currency           string         `json:"currency"`
	CustomNumber       string         `json:"customInvoiceNumber,omitempty"`
	UseCustomNumber    bool           `json:"useCustomInvoiceNumber,omitempty"`
	ManualTotal        string         `json:"manualTotal,omitempty"`
	UseManualTotal     bool           `json:"useManualTotal,omitempty"`
	OverallTaxRate     string         `json:"overallTax,omitempty"`
	UseOverallTax      bool           `json:"useOverallTax,omitempty"`
	ValidityMonths     string         `json:"validityMonths,omitempty"`
	ValidityPeriod     string         `json:"validityPeriod,omitempty"` // texto derivado: "<n> <meses desde...>"
	PaymentDetails     string         `json:"paymentDetails,omitempty"` // texto derivado por el formateador de términos
	Advance            PaymentPortion `json:"advance"`
	Delivery           PaymentPortion `json:"delivery"`
	IncludeDelivery    bool           `json:"includeDelivery,omitempty"`
}

// NewFormState crea un borrador vacío con una línea inicial (el formulario
// nunca baja de una línea).
func NewFormState(currency string) FormState {
	return FormState{
		LineItems: []LineItem{{Quantity: "1", TaxRate: "0"}},
		Currency:  currency,
		Advance:   PaymentPortion{Kind: PortionPercentage},
		Delivery:  PaymentPortion{Kind: PortionPercentage},
	}
}

// TaxMode devuelve el modo de impuesto activo.
func (f FormState) TaxMode() TaxMode {
	if f.UseOverallTax {
		return TaxModeOverall
	}
	return TaxModePerLine
}

// TotalMode devuelve el modo de total activo.
func (f FormState) TotalMode() TotalMode {
	if f.UseManualTotal {
		return TotalModeManual
	}
	return TotalModeComputed
}

// AddLineItem agrega una fila nueva con los valores por defecto del formulario.
func (f *FormState) AddLineItem() {
	f.LineItems = append(f.LineItems, LineItem{Quantity: "1", TaxRate: "0"})
}

// RemoveLineItem quita la fila en la posición dada, sin bajar nunca de una.
func (f *FormState) RemoveLineItem(index int) {
	if len(f.LineItems) <= 1 || index < 0 || index >= len(f.LineItems) {
		return
	}
	f.LineItems = append(f.LineItems[:index], f.LineItems[index+1:]...)
}
