// Package kvstore implementa el adaptador de persistencia clave-valor del
// back-office: un archivo JSON por clave dentro del directorio de datos, con
// semántica cargar-con-semilla y sobrescritura total en cada guardado.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Claves de las colecciones persistidas. El formato no lleva etiqueta de
// versión de esquema.
const (
	KeyProductos   = "meddev-productos"
	KeyAlmacenes   = "meddev-almacenes"
	KeyClientes    = "meddev-clientes"
	KeyInventario  = "meddev-inventario"
	KeyMovimientos = "meddev-movimientos"
	KeyVentas      = "meddev-ventas"
	KeySolicitudes = "zogen-solicitudes"
	KeyProspectos  = "zogen-prospectos"
)

// Store es el adaptador de archivos JSON. Todas las operaciones serializan el
// valor completo; no hay escrituras parciales ni tokens de concurrencia.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New crea el adaptador sobre el directorio dado (se crea si no existe).
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load devuelve el valor guardado bajo key. Si la clave no existe, persiste
// seed y devuelve seed. Si el contenido no se puede parsear, devuelve seed
// sin reparar el archivo corrupto (el siguiente Save lo sobrescribirá).
func Load[T any](s *Store, key string, seed T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return seed, fmt.Errorf("leer %s: %w", key, err)
		}
		if err := s.writeLocked(key, seed); err != nil {
			return seed, err
		}
		return seed, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return seed, nil
	}
	return v, nil
}

// Save serializa value y sobrescribe el archivo completo de la clave.
func Save[T any](s *Store, key string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, value)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// writeLocked escribe vía archivo temporal + rename para que el reemplazo
// sea atómico desde el punto de vista del adaptador.
func (s *Store) writeLocked(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	dst := s.path(key)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("reemplazar %s: %w", key, err)
	}
	return nil
}
