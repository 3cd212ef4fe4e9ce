package repository

import (
	"context"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// InvoiceRepository archivo histórico de facturas generadas.
// Implementación opcional: sin DATABASE_URL el caso de uso recibe nil y
// el archivo queda deshabilitado.
type InvoiceRepository interface {
	Save(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
}
