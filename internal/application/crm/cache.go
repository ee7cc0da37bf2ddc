// Package crm contiene utilidades del pipeline comercial. El cache de
// solicitudes era un singleton a nivel de módulo en el sistema original; aquí
// es un objeto explícito con ciclo de vida inyectado para poder aislar
// instancias en tests.
package crm

import (
	"sync"
	"time"
)

// Cache guarda un listado en memoria con TTL. Una sola entrada: el listado
// completo de solicitudes se cachea como unidad, igual que el original.
type Cache[T any] struct {
	ttl time.Duration
	mu  sync.Mutex
	val []T
	set time.Time
	ok  bool
}

// NewCache construye el cache con el TTL dado. TTL cero desactiva el cache
// (todas las lecturas van al repositorio).
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl}
}

// Get devuelve el valor cacheado si sigue vigente; si no, invoca refresh,
// guarda el resultado y lo devuelve. refresh se ejecuta bajo el lock: dos
// lectores concurrentes no disparan dos refrescos.
func (c *Cache[T]) Get(refresh func() ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok && c.ttl > 0 && time.Since(c.set) < c.ttl {
		return c.val, nil
	}
	val, err := refresh()
	if err != nil {
		return nil, err
	}
	c.val = val
	c.set = time.Now()
	c.ok = c.ttl > 0
	return val, nil
}

// Invalidate descarta el valor cacheado; la siguiente lectura refresca.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ok = false
	c.val = nil
}
