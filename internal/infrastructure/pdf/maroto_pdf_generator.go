// Package pdf implementa la representación imprimible del documento
// (factura o cotización) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Emisor        │  FACTURE/DEVIS + N° + Fechas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: cliente                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Designación | P.Unit HT | TVA% | Total HT     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto activo / TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Términos de pago + Validez + Pie personalizado              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
)

// ── Paletas por tema ──────────────────────────────────────────────────────────

type palette struct {
	primary *props.Color
	accent  *props.Color
	gray    *props.Color
}

var palettes = map[string]palette{
	"professional": {
		primary: &props.Color{Red: 31, Green: 41, Blue: 55},
		accent:  &props.Color{Red: 37, Green: 99, Blue: 235},
		gray:    &props.Color{Red: 107, Green: 114, Blue: 128},
	},
	"modern": {
		primary: &props.Color{Red: 15, Green: 118, Blue: 110},
		accent:  &props.Color{Red: 20, Green: 184, Blue: 166},
		gray:    &props.Color{Red: 100, Green: 116, Blue: 139},
	},
	"minimal": {
		primary: &props.Color{Red: 23, Green: 23, Blue: 23},
		accent:  &props.Color{Red: 82, Green: 82, Blue: 82},
		gray:    &props.Color{Red: 163, Green: 163, Blue: 163},
	},
	"colorful": {
		primary: &props.Color{Red: 124, Green: 58, Blue: 237},
		accent:  &props.Color{Red: 236, Green: 72, Blue: 153},
		gray:    &props.Color{Red: 120, Green: 113, Blue: 108},
	},
}

func paletteFor(theme string) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["professional"]
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. Todas las etiquetas
// salen del catálogo del idioma del snapshot.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	tr := i18n.Translator(inv.Language)
	pal := paletteFor(inv.Settings.Theme)

	docTitle := tr("facture")
	if inv.Settings.DocumentType == entity.DocumentQuote {
		docTitle = tr("devis")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTitle+" "+inv.Number, true).
		WithAuthor(inv.CompanyInfo.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(inv, docTitle, pal, tr))
	m.AddRows(line.NewRow(1, props.Line{Color: pal.accent, Thickness: 0.5}))
	m.AddRows(g.billToRow(inv, pal, tr))
	m.AddRows(line.NewRow(1, props.Line{Color: pal.accent, Thickness: 0.3}))

	m.AddRows(g.tableHeaderRow(inv, pal, tr))
	for _, r := range g.tableRows(inv) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: pal.accent, Thickness: 0.3}))
	for _, r := range g.totalsRows(inv, pal, tr) {
		m.AddRows(r)
	}

	for _, r := range g.footerRows(inv, pal, tr) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + emisor (izq) y tipo de documento + número + fechas (der).
func (g *MarotoPDFGenerator) headerRow(inv *entity.Invoice, docTitle string, pal palette, tr func(string) string) core.Row {
	height := 26.0
	if inv.Settings.CompactMode {
		height = 20
	}

	left := col.New(7)
	top := 1.0
	if inv.Settings.ShowLogo && inv.Settings.CompanyLogo != "" {
		if img, ext, err := decodeLogo(inv.Settings.CompanyLogo); err == nil {
			left.Add(image.NewFromBytes(img, ext, props.Rect{Percent: 35, Top: 0}))
			top = 12
		}
	}
	left.Add(
		text.New(inv.CompanyInfo.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: pal.primary, Top: top,
		}),
		text.New(contactLine(inv.CompanyInfo), props.Text{
			Size: 8, Top: top + 7, Color: pal.gray,
		}),
	)

	return row.New(height).Add(
		left,
		col.New(5).Add(
			text.New(docTitle, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: pal.accent, Top: 1,
			}),
			text.New(tr("invoiceNumber")+" "+inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
			text.New(tr("invoiceDate")+": "+inv.IssueDate, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: pal.gray,
			}),
			text.New(tr("dueDateLabel")+" "+inv.DueDate, props.Text{
				Size: 8, Align: align.Right, Top: 19, Color: pal.gray,
			}),
		),
	)
}

// billToRow: datos del cliente.
func (g *MarotoPDFGenerator) billToRow(inv *entity.Invoice, pal palette, tr func(string) string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(tr("billTo"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: pal.accent, Top: 1,
			}),
			text.New(inv.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func (g *MarotoPDFGenerator) tableHeaderRow(inv *entity.Invoice, pal palette, tr func(string) string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: pal.primary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(tr("qty"), 1, align.Center),
		h(tr("designation"), 5, align.Left),
		h(tr("unitPriceHT"), 2, align.Right),
		h(tr("vat"), 1, align.Center),
		h(tr("totalHT"), 3, align.Right),
	)
}

// tableRows: una fila por línea con importe; sin líneas facturables, una sola
// fila con la descripción de servicio.
func (g *MarotoPDFGenerator) tableRows(inv *entity.Invoice) []core.Row {
	rowHeight := 7.0
	if inv.Settings.CompactMode {
		rowHeight = 5.5
	}
	sym := money.Symbol(inv.Currency)

	var result []core.Row
	for _, it := range inv.LineItems {
		qty := money.ParseAmount(it.Quantity)
		price := money.ParseAmount(it.UnitPrice)
		if it.Description == "" && price.IsZero() {
			continue
		}
		rate := money.ParseAmount(it.TaxRate)
		result = append(result, row.New(rowHeight).Add(
			col.New(1).Add(text.New(qty.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(sym+price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(rate.String()+"%", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(sym+qty.Mul(price).StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	if len(result) == 0 && inv.ServiceDescription != "" {
		result = append(result, row.New(rowHeight).Add(
			col.New(9).Add(text.New(inv.ServiceDescription, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(sym+inv.GrandTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: subtotal, impuesto activo y total autoritativo. En total manual
// el subtotal y los impuestos de las líneas se muestran igual; manda el total.
func (g *MarotoPDFGenerator) totalsRows(inv *entity.Invoice, pal palette, tr func(string) string) []core.Row {
	taxLabel := tr("totalIndividualTaxes")
	if inv.UseOverallTax {
		rate := money.ParseAmount(inv.OverallTaxRate)
		taxLabel = tr("overallTax") + " (" + rate.String() + "%):"
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return []core.Row{
		row.New(6).Add(
			col.New(6),
			col.New(3).Add(label(tr("subtotal"))),
			col.New(3).Add(value(money.Format(inv.Subtotal, inv.Currency))),
		),
		row.New(6).Add(
			col.New(6),
			col.New(3).Add(label(taxLabel)),
			col.New(3).Add(value(money.Format(inv.TaxTotal, inv.Currency))),
		),
		row.New(8).Add(
			col.New(6),
			col.New(3).Add(text.New(tr("total"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: pal.accent, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(money.FormatGrouped(inv.GrandTotal, inv.Currency), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: pal.accent, Right: 1, Top: 1,
			})),
		),
	}
}

// footerRows: términos de pago, validez y pie (personalizado o el default del
// idioma).
func (g *MarotoPDFGenerator) footerRows(inv *entity.Invoice, pal palette, tr func(string) string) []core.Row {
	var rows []core.Row

	if inv.PaymentDetails != "" {
		rows = append(rows,
			line.NewRow(3),
			row.New(10).Add(col.New(12).Add(
				text.New(tr("paymentTermsHeader"), props.Text{
					Style: fontstyle.Bold, Size: 8, Color: pal.accent, Top: 1,
				}),
				text.New(inv.PaymentDetails, props.Text{Size: 8, Top: 6, Color: pal.primary}),
			)),
		)
	}

	if inv.ValidityPeriod != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(tr("validity")+" "+inv.ValidityPeriod, props.Text{Size: 8, Top: 1, Color: pal.gray}),
		)))
	}

	footer := inv.Settings.CustomFooter
	if strings.TrimSpace(footer) == "" {
		footer = tr("defaultFooter")
	}
	rows = append(rows,
		line.NewRow(3),
		row.New(8).Add(col.New(12).Add(
			text.New(footer, props.Text{Size: 7, Color: pal.gray, Top: 2, Align: align.Center}),
		)),
	)
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// contactLine arma "Dirección | Tel | Email" omitiendo campos vacíos.
func contactLine(c entity.CompanyInfo) string {
	var parts []string
	for _, s := range []string{c.Address, c.Phone, c.Email, c.Website} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "   |   ")
}

// decodeLogo decodifica un data URL base64 (data:image/png;base64,...).
func decodeLogo(dataURL string) ([]byte, extension.Type, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return nil, "", fmt.Errorf("pdf: logo no es un data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: decodificar logo: %w", err)
	}
	switch {
	case strings.Contains(header, "image/png"):
		return raw, extension.Png, nil
	case strings.Contains(header, "image/jpeg"), strings.Contains(header, "image/jpg"):
		return raw, extension.Jpg, nil
	}
	return nil, "", fmt.Errorf("pdf: formato de logo no soportado: %s", header)
}
