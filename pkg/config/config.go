package config

import (
	"io/fs"
	"strconv"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/errors"
)

// Config is the merged dokv configuration
type Config struct {
	Store  StoreConfig  `koanf:"store"`
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
}

// StoreConfig controls where and how the snapshot is kept
type StoreConfig struct {
	Path     string      `koanf:"path"`
	Format   string      `koanf:"format"`
	FileMode fs.FileMode `koanf:"file_mode"`
	Atomic   bool        `koanf:"atomic"`
	AutoSync bool        `koanf:"auto_sync"`
}

// OutputConfig controls how command results are rendered
type OutputConfig struct {
	Format string `koanf:"format"`
}

// LogConfig controls log destinations
type LogConfig struct {
	File bool `koanf:"file"`
}

var outputFormats = []string{"auto", "term", "text", "json"}

// Validate checks values that decode fine but make no sense
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return errors.New(errors.ErrConfigValid, "store.path must not be empty")
	}
	if c.Store.Format != "" {
		if _, err := codec.Lookup(c.Store.Format); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid store.format").
				WithDetail("format", c.Store.Format)
		}
	}
	if c.Store.FileMode == 0 || c.Store.FileMode&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "invalid store.file_mode %#o", uint32(c.Store.FileMode))
	}
	for _, f := range outputFormats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigValid, "invalid output.format %q (want one of auto, term, text, json)", c.Output.Format)
}

// FileModeString renders the mode the way it is written in config files
func (c *Config) FileModeString() string {
	return "0" + strconv.FormatUint(uint64(c.Store.FileMode), 8)
}
