package crm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zogen/backoffice-api/internal/application/crm"
)

func TestCache_SirveDesdeCacheDentroDelTTL(t *testing.T) {
	c := crm.NewCache[string](time.Minute)

	llamadas := 0
	refresh := func() ([]string, error) {
		llamadas++
		return []string{"a", "b"}, nil
	}

	got, err := c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, llamadas, "la segunda lectura debe salir del cache")
}

func TestCache_InvalidateFuerzaRefresco(t *testing.T) {
	c := crm.NewCache[int](time.Minute)

	llamadas := 0
	refresh := func() ([]int, error) {
		llamadas++
		return []int{llamadas}, nil
	}

	_, err := c.Get(refresh)
	require.NoError(t, err)
	c.Invalidate()

	got, err := c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
	assert.Equal(t, 2, llamadas)
}

func TestCache_TTLCeroDesactivaElCache(t *testing.T) {
	c := crm.NewCache[string](0)

	llamadas := 0
	refresh := func() ([]string, error) {
		llamadas++
		return nil, nil
	}

	_, err := c.Get(refresh)
	require.NoError(t, err)
	_, err = c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, 2, llamadas, "con TTL cero cada lectura refresca")
}

func TestCache_ErrorDeRefreshNoSeCachea(t *testing.T) {
	c := crm.NewCache[string](time.Minute)

	falla := true
	llamadas := 0
	refresh := func() ([]string, error) {
		llamadas++
		if falla {
			return nil, assert.AnError
		}
		return []string{"ok"}, nil
	}

	_, err := c.Get(refresh)
	require.Error(t, err)

	falla = false
	got, err := c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, got)
	assert.Equal(t, 2, llamadas)
}

func TestCache_ExpiraTrasElTTL(t *testing.T) {
	c := crm.NewCache[string](10 * time.Millisecond)

	llamadas := 0
	refresh := func() ([]string, error) {
		llamadas++
		return []string{"v"}, nil
	}

	_, err := c.Get(refresh)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = c.Get(refresh)
	require.NoError(t, err)
	assert.Equal(t, 2, llamadas)
}
