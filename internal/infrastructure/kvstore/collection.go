package kvstore

import "sync"

// Collection mantiene en memoria una colección completa respaldada por una
// clave del Store: se carga una sola vez y cada mutación persiste el snapshot
// completo. El mutex convierte cada lectura-modificación-escritura en una
// sección crítica por colección; es el reemplazo explícito de la suposición
// "una sola pestaña escribe" del sistema original.
type Collection[T any] struct {
	store  *Store
	key    string
	mu     sync.Mutex
	items  []T
	loaded bool
}

// NewCollection crea la colección sobre la clave dada (carga perezosa).
func NewCollection[T any](store *Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	items, err := Load(c.store, c.key, []T{})
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// View ejecuta fn con la colección actual bajo el lock, sin persistir.
// fn no debe retener el slice fuera de la llamada.
func (c *Collection[T]) View(fn func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return err
	}
	return fn(c.items)
}

// Update ejecuta fn bajo el lock y persiste el slice resultante como nuevo
// snapshot de la colección. Si fn devuelve error no se escribe nada.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return err
	}
	next, err := fn(c.items)
	if err != nil {
		return err
	}
	if err := Save(c.store, c.key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Snapshot devuelve una copia de la colección actual.
func (c *Collection[T]) Snapshot() ([]T, error) {
	var out []T
	err := c.View(func(items []T) error {
		out = make([]T, len(items))
		copy(out, items)
		return nil
	})
	return out, err
}
