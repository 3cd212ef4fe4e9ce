package repository

// Store almacén clave-valor para borradores, ajustes y perfil de empresa.
// Los valores son blobs JSON opacos; la interpretación es del caso de uso.
type Store interface {
	// Get devuelve el valor y si la clave existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
