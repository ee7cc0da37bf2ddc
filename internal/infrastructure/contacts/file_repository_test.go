package contacts_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/infrastructure/contacts"
)

func newRepo(t *testing.T) *contacts.FileRepo {
	t.Helper()
	repo, err := contacts.NewFileRepository(filepath.Join(t.TempDir(), "contacts.json"))
	require.NoError(t, err)
	return repo
}

func TestList_ArchivoAusenteEsVacio(t *testing.T) {
	repo := newRepo(t)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpsert_CreaYActualizaPorTelefono(t *testing.T) {
	repo := newRepo(t)

	require.NoError(t, repo.Upsert(&entity.Contact{
		PhoneNumber: "+5215512345678",
		ContactName: "Dra. Martínez",
		Status:      "activo",
		UpdatedAt:   time.Now(),
	}))

	got, err := repo.GetByPhone("+5215512345678")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dra. Martínez", got.ContactName)

	// Mismo teléfono: se reemplaza, no se duplica.
	require.NoError(t, repo.Upsert(&entity.Contact{
		PhoneNumber: "+5215512345678",
		ContactName: "Dra. Martínez López",
		Status:      "inactivo",
	}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dra. Martínez López", list[0].ContactName)
	assert.Equal(t, "inactivo", list[0].Status)
}

func TestList_OrdenadoPorTelefono(t *testing.T) {
	repo := newRepo(t)

	for _, phone := range []string{"+525599", "+525511", "+525544"} {
		require.NoError(t, repo.Upsert(&entity.Contact{PhoneNumber: phone}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "+525511", list[0].PhoneNumber)
	assert.Equal(t, "+525544", list[1].PhoneNumber)
	assert.Equal(t, "+525599", list[2].PhoneNumber)
}

func TestGetByPhone_Inexistente(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.GetByPhone("+520000000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Archivo corrupto: el repositorio lo trata como vacío; el siguiente Upsert
// lo sobrescribe con contenido válido.
func TestLoad_ArchivoCorruptoEsVacio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.json")
	require.NoError(t, os.WriteFile(path, []byte("no-es-json"), 0o644))

	repo, err := contacts.NewFileRepository(path)
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Upsert(&entity.Contact{PhoneNumber: "+5255", ContactName: "Nuevo"}))
	list, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
