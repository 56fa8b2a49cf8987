// pkg/store/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: OS filesystem (t.TempDir), afero memory/read-only filesystems
// PURPOSE: Test open/create, get/set, sync and iteration semantics

package store_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/arthur-debert/dokv/pkg/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "store.kv")
}

func readJSON(t *testing.T, path string) map[string]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestOpen_NonexistentPathIsEmpty(t *testing.T) {
	path := tempPath(t)

	s, err := store.Open[string](path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, path, s.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "open must not create the file")
}

func TestOpen_ParentIsNotADirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cannot simulate a non-NotFound error on windows")
	}
	dir := t.TempDir()
	notADir := filepath.Join(dir, "not_a_directory")
	require.NoError(t, os.WriteFile(notADir, nil, 0644))

	s, err := store.Open[string](filepath.Join(notADir, "store_file"))
	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreOpen))
	assert.Equal(t, filepath.Join(notADir, "store_file"), errors.GetErrorDetails(err)["path"])
}

func TestOpen_PathIsADirectory(t *testing.T) {
	_, err := store.Open[string](t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreOpen))
}

func TestOpen_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0000))

	_, err := store.Open[string](path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreOpen))
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"key1": `), 0644))

	_, err := store.Open[string](path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreDecode))
	assert.Equal(t, "json", errors.GetErrorDetails(err)["codec"])
}

func TestOpen_EmptyJSONFileFailsToDecode(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := store.Open[string](path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreDecode))
}

func TestGet_AbsentKey(t *testing.T) {
	s := store.New[string](tempPath(t))

	v, ok := s.Get("bogus")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_ThenGet(t *testing.T) {
	s := store.New[string](tempPath(t))

	prev, replaced := s.Set("foo", "bar")
	assert.False(t, replaced)
	assert.Empty(t, prev)

	v, ok := s.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestSet_LastWriteWins(t *testing.T) {
	s := store.New[string](tempPath(t))
	s.Set("other", "untouched")
	s.Set("foo", "old")

	prev, replaced := s.Set("foo", "new")
	assert.True(t, replaced)
	assert.Equal(t, "old", prev)

	v, _ := s.Get("foo")
	assert.Equal(t, "new", v)
	v, _ = s.Get("other")
	assert.Equal(t, "untouched", v)
	assert.Equal(t, 2, s.Len())
}

func TestDelete(t *testing.T) {
	s := store.New[string](tempPath(t))
	s.Set("a", "1")

	prev, removed := s.Delete("a")
	assert.True(t, removed)
	assert.Equal(t, "1", prev)
	_, ok := s.Get("a")
	assert.False(t, ok)

	_, removed = s.Delete("a")
	assert.False(t, removed)
}

func TestSync_RoundTrip(t *testing.T) {
	path := tempPath(t)
	s := store.New[string](path)
	s.Set("k1", "v1")
	s.Set("k2", "v2")
	require.NoError(t, s.Sync())

	reopened, err := store.Open[string](path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, collect(reopened))
}

func TestSync_Idempotent(t *testing.T) {
	path := tempPath(t)
	s := store.New[string](path)
	s.Set("k1", "v1")

	require.NoError(t, s.Sync())
	first := readJSON(t, path)
	require.NoError(t, s.Sync())
	second := readJSON(t, path)

	assert.Equal(t, first, second)
}

func TestSync_ReflectsDeletes(t *testing.T) {
	path := tempPath(t)
	s := store.New[string](path)
	s.Set("a", "1")
	s.Set("b", "2")
	require.NoError(t, s.Sync())

	s.Delete("a")
	require.NoError(t, s.Sync())
	assert.Equal(t, map[string]string{"b": "2"}, readJSON(t, path))
}

func TestSync_EmptyStoreWritesEmptyObject(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, store.New[string](path).Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestSync_WriteFailureKeepsMemory(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/store.kv", []byte(`{"a":"1"}`), 0644))
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(base))

	s, err := store.Open[string]("/store.kv", store.WithFS(fsys))
	require.NoError(t, err)

	s.Set("b", "2")
	err = s.Sync()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreWrite))

	v, ok := s.Get("b")
	assert.True(t, ok, "in-memory mutation survives a failed sync")
	assert.Equal(t, "2", v)

	raw, err := afero.ReadFile(base, "/store.kv")
	require.NoError(t, err)
	assert.Equal(t, `{"a":"1"}`, string(raw), "disk is unchanged")
}

type unencodable struct{}

func (unencodable) MarshalJSON() ([]byte, error) { return nil, assert.AnError }

func TestSync_EncodeFailure(t *testing.T) {
	path := tempPath(t)
	s := store.New[unencodable](path)
	s.Set("k", unencodable{})

	err := s.Sync()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreEncode))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when encoding fails")
}

func TestSync_XMLRejectsNonStringValues(t *testing.T) {
	s := store.New[int](tempPath(t), store.WithCodec(codec.XML))
	s.Set("n", 1)
	err := s.Sync()
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreEncode))
}

func TestSync_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := tempPath(t)
	s := store.New[string](path, store.WithFileMode(0600))
	require.NoError(t, s.Sync())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}

func TestSync_Atomic(t *testing.T) {
	path := tempPath(t)
	s := store.New[string](path, store.WithAtomicSync(true))
	s.Set("k", "v")
	require.NoError(t, s.Sync())

	assert.Equal(t, map[string]string{"k": "v"}, readJSON(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the temporary file is renamed away")
}

func TestCodecSelection(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := codec.Lookup(name)
			require.NoError(t, err)
			path := filepath.Join(t.TempDir(), "store"+c.Extensions()[0])

			s := store.New[string](path)
			assert.Equal(t, name, s.Codec().Name(), "codec is picked from the extension")
			s.Set("key1", "value1")
			require.NoError(t, s.Sync())

			reopened, err := store.Open[string](path)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"key1": "value1"}, collect(reopened))
		})
	}
}

func TestSync_ValuesSurviveReopen(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		reject []string // codecs that refuse the value
	}{
		{name: "crlf", value: "a\r\nb"},
		{name: "cr", value: "a\rb"},
		{name: "ctrl", value: "a\x01b", reject: []string{"xml"}},
		{name: "invalid_utf8", value: "a\xffb", reject: []string{"json", "toml", "xml", "yaml"}},
	}

	for _, name := range codec.Names() {
		c, err := codec.Lookup(name)
		require.NoError(t, err)
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "store"+c.Extensions()[0])
				s := store.New[string](path)
				s.Set("before", "ok")
				require.NoError(t, s.Sync())

				s.Set("k", tt.value)
				err := s.Sync()
				if slices.Contains(tt.reject, name) {
					require.Error(t, err)
					assert.True(t, errors.IsErrorCode(err, errors.ErrStoreEncode))
					assert.ErrorIs(t, err, errors.New(errors.ErrCodecUnsupported, ""))

					reopened, openErr := store.Open[string](path)
					require.NoError(t, openErr, "a refused sync leaves the previous snapshot")
					assert.Equal(t, map[string]string{"before": "ok"}, collect(reopened))
					return
				}
				require.NoError(t, err)

				reopened, err := store.Open[string](path)
				require.NoError(t, err)
				got, ok := reopened.Get("k")
				require.True(t, ok)
				assert.Equal(t, tt.value, got)
			})
		}
	}
}

type settings struct {
	Enabled bool `json:"enabled"`
	Retries int  `json:"retries"`
}

func TestGenericValues(t *testing.T) {
	path := tempPath(t)
	s := store.New[settings](path)
	s.Set("svc", settings{Enabled: true, Retries: 3})
	require.NoError(t, s.Sync())

	reopened, err := store.Open[settings](path)
	require.NoError(t, err)
	v, ok := reopened.Get("svc")
	require.True(t, ok)
	assert.Equal(t, settings{Enabled: true, Retries: 3}, v)
}

func TestAll(t *testing.T) {
	s := store.New[string](tempPath(t))
	s.Set("k1", "v1")
	s.Set("k2", "v2")

	assert.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, collect(s))
	assert.Equal(t, collect(s), collect(s), "iteration can be restarted")

	t.Run("covers_entries_at_start", func(t *testing.T) {
		seen := 0
		for k := range s.All() {
			s.Set(k+"-copy", "x")
			seen++
		}
		assert.Equal(t, 2, seen)
		assert.Equal(t, 4, s.Len())
	})

	t.Run("stops_early", func(t *testing.T) {
		count := 0
		for range s.All() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}

func TestKeys(t *testing.T) {
	s := store.New[string](tempPath(t))
	s.Set("b", "2")
	s.Set("a", "1")
	s.Set("c", "3")
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestScenario(t *testing.T) {
	path := tempPath(t)

	s, err := store.Open[string](path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s.Set("key1", "value1")
	require.NoError(t, s.Sync())
	assert.Equal(t, map[string]string{"key1": "value1"}, readJSON(t, path))

	s.Set("key2", "value2")
	require.NoError(t, s.Sync())
	assert.Equal(t, map[string]string{"key1": "value1", "key2": "value2"}, readJSON(t, path))

	reopened, err := store.Open[string](path)
	require.NoError(t, err)
	v, ok := reopened.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", v)
	v, ok = reopened.Get("key2")
	assert.True(t, ok)
	assert.Equal(t, "value2", v)
	_, ok = reopened.Get("missing")
	assert.False(t, ok)
}

func collect[V any](s *store.Store[V]) map[string]V {
	out := make(map[string]V)
	for k, v := range s.All() {
		out[k] = v
	}
	return out
}
