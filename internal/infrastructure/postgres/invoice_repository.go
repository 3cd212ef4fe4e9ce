package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo archivo histórico de snapshots en PostgreSQL. Las columnas
// numéricas (NUMERIC vía codec decimal) permiten consultar totales con SQL;
// el snapshot completo viaja como JSONB para reconstruir la factura tal cual
// se emitió.
//
// Esquema esperado:
//
//	CREATE TABLE invoices (
//	    id          UUID PRIMARY KEY,
//	    number      TEXT NOT NULL,
//	    client_name TEXT NOT NULL,
//	    currency    TEXT NOT NULL,
//	    issue_date  DATE NOT NULL,
//	    due_date    TEXT NOT NULL,
//	    subtotal    NUMERIC(14,2) NOT NULL,
//	    tax_total   NUMERIC(14,2) NOT NULL,
//	    grand_total NUMERIC(14,2) NOT NULL,
//	    language    TEXT NOT NULL,
//	    snapshot    JSONB NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Save persiste el snapshot. Los snapshots nunca se actualizan: cada
// generación inserta una fila nueva.
func (r *InvoiceRepo) Save(ctx context.Context, inv *entity.Invoice) error {
	snapshot, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	query := `
		INSERT INTO invoices (id, number, client_name, currency, issue_date, due_date, subtotal, tax_total, grand_total, language, snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.pool.Exec(ctx, query,
		inv.ID, inv.Number, inv.ClientName, inv.Currency, inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.TaxTotal, inv.GrandTotal, inv.Language, snapshot, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID recupera un snapshot; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var snapshot []byte
	err := r.pool.QueryRow(ctx, `SELECT snapshot FROM invoices WHERE id = $1`, id).Scan(&snapshot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select invoice: %w", err)
	}
	var inv entity.Invoice
	if err := json.Unmarshal(snapshot, &inv); err != nil {
		return nil, fmt.Errorf("deserializar snapshot %s: %w", id, err)
	}
	return &inv, nil
}

// List devuelve snapshots ordenados del más reciente al más antiguo.
func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT snapshot FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var snapshot []byte
		if err := rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		var inv entity.Invoice
		if err := json.Unmarshal(snapshot, &inv); err != nil {
			return nil, fmt.Errorf("deserializar snapshot: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
