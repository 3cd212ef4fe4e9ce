package billing

import (
	"context"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// InvoicePDFGenerator renderiza la representación imprimible de un snapshot.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}
