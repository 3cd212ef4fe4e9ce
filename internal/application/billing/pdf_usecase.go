package billing

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// PDFUseCase genera la representación imprimible de un snapshot. Una sola
// exportación a la vez: mientras hay una en curso, las demás reciben
// domain.ErrExportBusy en lugar de encolarse.
type PDFUseCase struct {
	generator InvoicePDFGenerator
	busy      atomic.Bool
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{generator: generator}
}

// Export renderiza el snapshot a PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrExportBusy       si ya hay una exportación en curso.
func (uc *PDFUseCase) Export(ctx context.Context, inv *entity.Invoice) (pdfBytes []byte, filename string, err error) {
	if !uc.busy.CompareAndSwap(false, true) {
		return nil, "", domain.ErrExportBusy
	}
	defer uc.busy.Store(false)

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	return pdfBytes, ExportFilename(inv.ClientName, time.Now()), nil
}

// ExportFilename arma Invoice_<cliente saneado, máx 20 runas>_<fecha>.pdf.
// Del nombre solo sobreviven letras, dígitos y guiones; el resto se vuelve '_'.
func ExportFilename(clientName string, now time.Time) string {
	var b strings.Builder
	count := 0
	for _, r := range clientName {
		if count >= 20 {
			break
		}
		count++
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "Client"
	}
	return "Invoice_" + name + "_" + now.Format("2006-01-02") + ".pdf"
}
