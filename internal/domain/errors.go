package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrExportBusy      = errors.New("exportación PDF en curso")
	ErrStorageCorrupt  = errors.New("valor almacenado corrupto")
	ErrArchiveDisabled = errors.New("archivo de facturas deshabilitado")
)

// FieldErrors agrupa errores de validación por campo del formulario.
// Solo se produce al momento del envío (generate); durante la edición los
// valores numéricos inválidos se degradan a cero sin reportar error.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validación del formulario fallida"
}

// HasErrors indica si hay al menos un campo inválido.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }
