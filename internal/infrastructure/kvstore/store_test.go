package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zogen/backoffice-api/internal/infrastructure/kvstore"
)

type registro struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

func newStore(t *testing.T) *kvstore.Store {
	t.Helper()
	s, err := kvstore.New(t.TempDir())
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Load / Save
// ──────────────────────────────────────────────────────────────────────────────

// Clave inexistente: Load devuelve la semilla y la persiste, de modo que la
// siguiente lectura ya no depende de la semilla.
func TestLoad_ClaveInexistentePersisteSemilla(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.New(dir)
	require.NoError(t, err)

	seed := []registro{{ID: "1", Nombre: "semilla"}}
	got, err := kvstore.Load(s, "coleccion", seed)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	// El archivo debe existir ya en disco.
	_, err = os.Stat(filepath.Join(dir, "coleccion.json"))
	require.NoError(t, err)

	// Una segunda carga con otra semilla devuelve lo persistido, no la semilla.
	got2, err := kvstore.Load(s, "coleccion", []registro{})
	require.NoError(t, err)
	assert.Equal(t, seed, got2)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)

	val := []registro{{ID: "a", Nombre: "uno"}, {ID: "b", Nombre: "dos"}}
	require.NoError(t, kvstore.Save(s, "coleccion", val))

	got, err := kvstore.Load(s, "coleccion", []registro{})
	require.NoError(t, err)
	assert.Equal(t, val, got)
}

// Contenido corrupto: Load cae a la semilla sin reparar el archivo. El
// siguiente Save es quien sobrescribe.
func TestLoad_ContenidoCorruptoDevuelveSemilla(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "rota.json"), []byte("{esto no es json"), 0o644))

	seed := []registro{{ID: "s", Nombre: "fallback"}}
	got, err := kvstore.Load(s, "rota", seed)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	// El archivo corrupto sigue intacto hasta el próximo Save.
	raw, err := os.ReadFile(filepath.Join(dir, "rota.json"))
	require.NoError(t, err)
	assert.Equal(t, "{esto no es json", string(raw))

	require.NoError(t, kvstore.Save(s, "rota", seed))
	got2, err := kvstore.Load(s, "rota", []registro{})
	require.NoError(t, err)
	assert.Equal(t, seed, got2)
}

// Save es idempotente: guardar dos veces el mismo valor deja el mismo estado.
func TestSave_Idempotente(t *testing.T) {
	s := newStore(t)

	val := []registro{{ID: "x", Nombre: "igual"}}
	require.NoError(t, kvstore.Save(s, "k", val))
	require.NoError(t, kvstore.Save(s, "k", val))

	got, err := kvstore.Load(s, "k", []registro{})
	require.NoError(t, err)
	assert.Equal(t, val, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Collection
// ──────────────────────────────────────────────────────────────────────────────

func TestCollection_UpdatePersisteSnapshot(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.New(dir)
	require.NoError(t, err)

	col := kvstore.NewCollection[registro](s, "items")
	require.NoError(t, col.Update(func(items []registro) ([]registro, error) {
		return append(items, registro{ID: "1", Nombre: "primero"}), nil
	}))

	// Una colección nueva sobre la misma clave ve lo persistido.
	col2 := kvstore.NewCollection[registro](s, "items")
	snap, err := col2.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "primero", snap[0].Nombre)
}

func TestCollection_UpdateConErrorNoEscribe(t *testing.T) {
	s := newStore(t)

	col := kvstore.NewCollection[registro](s, "items")
	require.NoError(t, col.Update(func(items []registro) ([]registro, error) {
		return append(items, registro{ID: "1"}), nil
	}))

	fallo := assert.AnError
	err := col.Update(func(items []registro) ([]registro, error) {
		return nil, fallo
	})
	require.ErrorIs(t, err, fallo)

	snap, err := col.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap, 1, "el estado previo debe conservarse")
}

func TestCollection_SnapshotEsCopia(t *testing.T) {
	s := newStore(t)

	col := kvstore.NewCollection[registro](s, "items")
	require.NoError(t, col.Update(func(items []registro) ([]registro, error) {
		return append(items, registro{ID: "1", Nombre: "original"}), nil
	}))

	snap, err := col.Snapshot()
	require.NoError(t, err)
	snap[0].Nombre = "mutado"

	snap2, err := col.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "original", snap2[0].Nombre)
}
