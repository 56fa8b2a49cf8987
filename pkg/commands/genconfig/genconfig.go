package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/dokv/pkg/config"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Path is where the config is written when Write is set.
	Path string
	// Write writes the file instead of only returning its content.
	Write bool
	// FileSystem overrides the filesystem; nil uses the OS.
	FileSystem types.FS
}

// GenConfig returns the default configuration and, with Write, stores it
// at Path unless a file is already there.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.DefaultsContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}
	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "config path is required")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	dir := filepath.Dir(opts.Path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigWrite, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}

	if _, err := fsys.Stat(opts.Path); err == nil {
		logger.Warn().Str("path", opts.Path).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := fsys.WriteFile(opts.Path, []byte(result.ConfigContent), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config to %s", opts.Path).
			WithDetail("path", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.Path)
	return result, nil
}
