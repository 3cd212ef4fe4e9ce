package dto

import (
	"github.com/shopspring/decimal"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// PreviewResponse desglose en vivo del formulario para POST /api/invoices/preview.
// Los montos son autoritativos (decimal); los textos derivados van ya armados.
type PreviewResponse struct {
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TaxAmount      decimal.Decimal       `json:"taxAmount"`
	Total          decimal.Decimal       `json:"total"`
	TaxMode        string                `json:"taxMode"`   // per_line | overall
	TotalMode      string                `json:"totalMode"` // computed | manual
	Advance        entity.PaymentPortion `json:"advance"`
	Delivery       entity.PaymentPortion `json:"delivery"`
	PaymentDetails string                `json:"paymentDetails,omitempty"`
	ValidityPeriod string                `json:"validityPeriod,omitempty"`
}

// PortionEditRequest body para POST /api/invoices/portion: una tecleada en el
// campo autoritativo de una porción, con el formulario completo para derivar
// la contraparte contra el total vigente.
type PortionEditRequest struct {
	Form   entity.FormState `json:"form"`
	Target string           `json:"target"` // advance | delivery
	Kind   string           `json:"kind"`   // percentage | amount
	Value  string           `json:"value"`  // texto crudo tecleado
}

// PortionEditResponse la porción reconciliada tras la edición.
type PortionEditResponse struct {
	Target  string                `json:"target"`
	Portion entity.PaymentPortion `json:"portion"`
}

// GenerateInvoiceRequest body para POST /api/invoices.
type GenerateInvoiceRequest struct {
	Form     entity.FormState `json:"form"`
	Language string           `json:"language,omitempty"` // en | fr | ar; vacío = header o default
}

// InvoiceResponse snapshot generado, con el formulario de reedición incluido.
type InvoiceResponse struct {
	Invoice  entity.Invoice   `json:"invoice"`
	EditForm entity.FormState `json:"editForm"` // snapshot reconvertido para seguir editando
}

// InvoiceListResponse listado del archivo histórico.
type InvoiceListResponse struct {
	Invoices []entity.Invoice `json:"invoices"`
	Page     PageResponse     `json:"page"`
}

// ShareRequest body para POST /api/invoices/whatsapp.
type ShareRequest struct {
	Form     entity.FormState `json:"form"`
	Language string           `json:"language,omitempty"`
	Phone    string           `json:"phone,omitempty"`    // dígitos E.164 sin '+'; vacío = link sin destinatario
	Preamble string           `json:"preamble,omitempty"` // texto libre antepuesto al mensaje
}

// ShareResponse mensaje plano y link listo para abrir.
type ShareResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// DraftResponse borrador cargado, con bandera de si existía.
type DraftResponse struct {
	Form  entity.FormState `json:"form"`
	Found bool             `json:"found"`
}

// SettingsResponse preferencias + perfil de empresa en una sola lectura.
type SettingsResponse struct {
	Settings entity.InvoiceSettings `json:"settings"`
	Company  entity.CompanyInfo     `json:"company"`
	Language string                 `json:"language"`
}
