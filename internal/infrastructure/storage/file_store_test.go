package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/infrastructure/storage"
)

func TestFileStore_SobreviveReapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("invoiceFormData", []byte(`{"clientName":"Acme"}`)))

	reopened, err := storage.NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("invoiceFormData")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"clientName":"Acme"}`, string(v))
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := storage.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("k", []byte(`1`)))
	require.NoError(t, s.Delete("k"))
	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// borrar una clave inexistente no es error
	assert.NoError(t, s.Delete("nada"))
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{rota"), 0o644))

	_, err := storage.NewFileStore(path)
	assert.ErrorIs(t, err, domain.ErrStorageCorrupt)
}

func TestFileStore_RechazaValorNoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := storage.NewFileStore(path)
	require.NoError(t, err)

	assert.Error(t, s.Set("k", []byte("sin comillas")))
}

func TestFileStore_PrimerArranqueSinArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "store.json")
	s, err := storage.NewFileStore(path)
	require.NoError(t, err)

	_, ok, err := s.Get("cualquiera")
	require.NoError(t, err)
	assert.False(t, ok)

	// la primera escritura crea el directorio
	require.NoError(t, s.Set("k", []byte(`true`)))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
