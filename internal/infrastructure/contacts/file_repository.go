// Package contacts persiste los contactos de WhatsApp en un único archivo
// JSON en disco: un objeto indexado por número de teléfono, leído y escrito
// completo en cada operación.
package contacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*FileRepo)(nil)

// FileRepo implementación del puerto ContactRepository sobre data/contacts.json.
type FileRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository construye el repositorio sobre la ruta dada; crea el
// directorio contenedor si hace falta.
func NewFileRepository(path string) (*FileRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de contactos: %w", err)
	}
	return &FileRepo{path: path}, nil
}

// List devuelve todos los contactos, ordenados por teléfono para que la
// respuesta sea estable entre llamadas.
func (r *FileRepo) List() ([]*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byPhone, err := r.loadLocked()
	if err != nil {
		return nil, err
	}
	phones := make([]string, 0, len(byPhone))
	for p := range byPhone {
		phones = append(phones, p)
	}
	sort.Strings(phones)
	out := make([]*entity.Contact, 0, len(phones))
	for _, p := range phones {
		c := byPhone[p]
		out = append(out, &c)
	}
	return out, nil
}

// GetByPhone devuelve el contacto del teléfono o nil si no existe.
func (r *FileRepo) GetByPhone(phone string) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byPhone, err := r.loadLocked()
	if err != nil {
		return nil, err
	}
	c, ok := byPhone[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Upsert inserta o reemplaza el contacto y reescribe el archivo completo.
func (r *FileRepo) Upsert(contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byPhone, err := r.loadLocked()
	if err != nil {
		return err
	}
	byPhone[contact.PhoneNumber] = *contact
	data, err := json.MarshalIndent(byPhone, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar contactos: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir contactos: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("reemplazar contactos: %w", err)
	}
	return nil
}

// loadLocked lee el archivo completo. Archivo ausente o corrupto equivale a
// un objeto vacío, el mismo fallback silencioso del resto del almacenamiento.
func (r *FileRepo) loadLocked() (map[string]entity.Contact, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]entity.Contact{}, nil
		}
		return nil, fmt.Errorf("leer contactos: %w", err)
	}
	byPhone := map[string]entity.Contact{}
	if err := json.Unmarshal(raw, &byPhone); err != nil {
		return map[string]entity.Contact{}, nil
	}
	return byPhone, nil
}
