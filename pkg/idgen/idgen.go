// Package idgen genera identificadores para los registros locales con el
// esquema histórico del sistema: milisegundos de época como cadena.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Generator produce identificadores únicos. Inyectable para que los tests
// usen secuencias deterministas.
type Generator interface {
	NewID() string
}

// Func adapta una función a Generator.
type Func func() string

// NewID implementa Generator.
func (f Func) NewID() string { return f() }

// EpochMillis genera ids `<prefijo><epoch-ms>`. Dos llamadas dentro del mismo
// milisegundo reciben un sufijo de secuencia para no colisionar.
type EpochMillis struct {
	prefix string
	mu     sync.Mutex
	last   int64
	seq    int
}

// NewEpochMillis construye el generador con el prefijo dado ("" para
// catálogos, "mv-" para movimientos).
func NewEpochMillis(prefix string) *EpochMillis {
	return &EpochMillis{prefix: prefix}
}

// NewID devuelve el siguiente identificador.
func (g *EpochMillis) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now().UnixMilli()
	if now == g.last {
		g.seq++
		return g.prefix + strconv.FormatInt(now, 10) + "-" + strconv.Itoa(g.seq)
	}
	g.last = now
	g.seq = 0
	return g.prefix + strconv.FormatInt(now, 10)
}
