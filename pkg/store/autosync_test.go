package store_test

import (
	"testing"

	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/arthur-debert/dokv/pkg/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSync_SetPersists(t *testing.T) {
	path := tempPath(t)
	a := store.NewAutoSync(store.New[string](path))

	require.NoError(t, a.Set("key1", "value1"))
	assert.Equal(t, map[string]string{"key1": "value1"}, readJSON(t, path))

	require.NoError(t, a.Set("key2", "value2"))
	assert.Equal(t, map[string]string{"key1": "value1", "key2": "value2"}, readJSON(t, path))

	v, ok := a.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, "value2", v)
	assert.Equal(t, 2, a.Len())
}

func TestAutoSync_Delete(t *testing.T) {
	path := tempPath(t)
	a := store.NewAutoSync(store.New[string](path))
	require.NoError(t, a.Set("a", "1"))
	require.NoError(t, a.Set("b", "2"))

	removed, err := a.Delete("a")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, map[string]string{"b": "2"}, readJSON(t, path))

	removed, err = a.Delete("nope")
	require.NoError(t, err)
	assert.False(t, removed)

	count := 0
	for range a.All() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestAutoSync_SetReportsSyncFailure(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	a := store.NewAutoSync(store.New[string]("/store.kv", store.WithFS(fsys)))

	err := a.Set("k", "v")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreWrite))

	v, ok := a.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
