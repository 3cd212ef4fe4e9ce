package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
)

// FileStore almacén clave-valor respaldado por un único archivo JSON
// (el análogo del localStorage del navegador: sobrevive reinicios).
// Cada escritura persiste el mapa completo vía archivo temporal + rename
// para no dejar un JSON a medias si el proceso muere a mitad de escritura.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewFileStore abre (o crea) el almacén en la ruta dada. Un archivo con JSON
// corrupto retorna domain.ErrStorageCorrupt; el caller decide si arranca con
// un almacén limpio.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// primer arranque
	case err != nil:
		return nil, fmt.Errorf("storage: abrir %s: %w", path, err)
	case len(raw) > 0:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrStorageCorrupt, path)
		}
	}
	return s, nil
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		// el archivo completo es un solo documento JSON; un valor ilegible
		// lo rompería para todas las claves
		return fmt.Errorf("storage: valor no-JSON para %q", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make(json.RawMessage, len(value))
	copy(v, value)
	s.data[key] = v
	return s.persistLocked()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persistLocked()
}

// persistLocked escribe el mapa completo; requiere s.mu tomado.
func (s *FileStore) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
