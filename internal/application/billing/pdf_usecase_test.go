package billing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/application/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
)

// blockingGenerator se queda generando hasta que se cierre release.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) GenerateInvoicePDF(context.Context, *entity.Invoice) ([]byte, error) {
	close(g.started)
	<-g.release
	return []byte("%PDF-1.7"), nil
}

func TestExport_RechazaConcurrencia(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	uc := appbilling.NewPDFUseCase(gen)
	inv := &entity.Invoice{ClientName: "Acme"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		data, name, err := uc.Export(context.Background(), inv)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.NotEmpty(t, name)
	}()

	<-gen.started
	_, _, err := uc.Export(context.Background(), inv)
	assert.ErrorIs(t, err, domain.ErrExportBusy)

	close(gen.release)
	wg.Wait()

	// liberado el flag, una nueva exportación vuelve a pasar
	gen2 := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	close(gen2.release)
	uc2 := appbilling.NewPDFUseCase(gen2)
	_, _, err = uc2.Export(context.Background(), inv)
	assert.NoError(t, err)
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		client string
		want   string
	}{
		{"Acme Corp", "Invoice_Acme_Corp_2026-08-30.pdf"},
		{"María / López", "Invoice_María___López_2026-08-30.pdf"},
		{"", "Invoice_Client_2026-08-30.pdf"},
		{"Nombre Larguísimo De Cliente SA", "Invoice_Nombre_Larguísimo_De_2026-08-30.pdf"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, appbilling.ExportFilename(c.client, day), "cliente=%q", c.client)
	}
}

func TestExportFilename_MaximoVeinteRunas(t *testing.T) {
	name := appbilling.ExportFilename("abcdefghijklmnopqrstuvwxyz", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "Invoice_abcdefghijklmnopqrst_2026-01-02.pdf", name)
}
