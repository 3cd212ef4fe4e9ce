package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento imprimible.
const (
	DocumentInvoice = "FACTURE" // factura
	DocumentQuote   = "DEVIS"   // cotización / presupuesto
)

// CompanyInfo identifica al emisor en el encabezado del documento.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

// InvoiceSettings son las preferencias de presentación del documento.
// Se persisten aparte del borrador y sobreviven entre sesiones.
type InvoiceSettings struct {
	Theme        string `json:"theme"`    // professional, modern, minimal, colorful
	Currency     string `json:"currency"` // USD, EUR, GBP, CAD, AUD, MAD
	ShowLogo     bool   `json:"showLogo"`
	CompanyLogo  string `json:"companyLogo,omitempty"` // data URL base64
	CustomFooter string `json:"customFooter"`
	DocumentType string `json:"documentType"` // DocumentInvoice | DocumentQuote
	CompactMode  bool   `json:"compactMode,omitempty"`
}

// Invoice es el snapshot inmutable que se produce en cada "generar". Nunca se
// muta: editar después de generar reingresa los campos al formulario y la
// próxima generación produce un snapshot nuevo.
type Invoice struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	IssueDate          string          `json:"issueDate"` // YYYY-MM-DD
	DueDate            string          `json:"dueDate"`   // YYYY-MM-DD
	Currency           string          `json:"currency"`
	ClientName         string          `json:"clientName"`
	ServiceDescription string          `json:"serviceDescription,omitempty"`
	LineItems          []LineItem      `json:"lineItems"`
	UseOverallTax      bool            `json:"useOverallTax,omitempty"`
	OverallTaxRate     string          `json:"overallTax,omitempty"`
	UseManualTotal     bool            `json:"useManualTotal,omitempty"`
	ManualTotal        string          `json:"manualTotal,omitempty"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxTotal           decimal.Decimal `json:"taxTotal"`
	GrandTotal         decimal.Decimal `json:"grandTotal"` // total autoritativo resuelto
	Advance            PaymentPortion  `json:"advance"`
	Delivery           PaymentPortion  `json:"delivery"`
	IncludeDelivery    bool            `json:"includeDelivery,omitempty"`
	PaymentDetails     string          `json:"paymentDetails,omitempty"`
	ValidityMonths     string          `json:"validityMonths,omitempty"`
	ValidityPeriod     string          `json:"validityPeriod,omitempty"`
	Language           string          `json:"language"`
	CompanyInfo        CompanyInfo     `json:"companyInfo"`
	Settings           InvoiceSettings `json:"settings"`
	CreatedAt          time.Time       `json:"createdAt"`
}
