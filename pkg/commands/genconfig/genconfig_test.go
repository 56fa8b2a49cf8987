package genconfig

import (
	"testing"

	"github.com/arthur-debert/dokv/pkg/config"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		fsys := filesystem.NewMemory()

		result, err := GenConfig(GenConfigOptions{FileSystem: fsys})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultsContent(), result.ConfigContent)
		assert.Contains(t, result.ConfigContent, "[store]")
		assert.Contains(t, result.ConfigContent, "[output]")
		assert.Empty(t, result.FilesWritten)

		_, err = fsys.Stat("/cfg/dokv/config.toml")
		assert.Error(t, err, "nothing is written without Write")
	})

	t.Run("write creates directories", func(t *testing.T) {
		fsys := filesystem.NewMemory()

		result, err := GenConfig(GenConfigOptions{Path: "/cfg/dokv/config.toml", Write: true, FileSystem: fsys})
		require.NoError(t, err)
		assert.Equal(t, []string{"/cfg/dokv/config.toml"}, result.FilesWritten)

		content, err := fsys.ReadFile("/cfg/dokv/config.toml")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultsContent(), string(content))
	})

	t.Run("existing file is kept", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, fsys.MkdirAll("/cfg", 0755))
		require.NoError(t, fsys.WriteFile("/cfg/config.toml", []byte("[store]\npath = \"mine.kv\"\n"), 0644))

		result, err := GenConfig(GenConfigOptions{Path: "/cfg/config.toml", Write: true, FileSystem: fsys})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)

		content, err := fsys.ReadFile("/cfg/config.toml")
		require.NoError(t, err)
		assert.Contains(t, string(content), "mine.kv")
	})

	t.Run("write failure", func(t *testing.T) {
		fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))

		_, err := GenConfig(GenConfigOptions{Path: "/cfg/config.toml", Write: true, FileSystem: fsys})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigWrite))
	})

	t.Run("write needs a path", func(t *testing.T) {
		_, err := GenConfig(GenConfigOptions{Write: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
