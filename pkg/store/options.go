package store

import (
	"io/fs"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/arthur-debert/dokv/pkg/types"
)

// DefaultFileMode is the permission used when Sync creates the file.
const DefaultFileMode fs.FileMode = 0644

type options struct {
	fs     types.FS
	codec  codec.Codec
	mode   fs.FileMode
	atomic bool
}

// Option configures a Store at construction time.
type Option func(*options)

// WithFS sets the filesystem the store reads and writes through.
func WithFS(fsys types.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithCodec sets the snapshot encoding. Defaults to codec.ForPath(path).
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithFileMode sets the permission bits used when the file is created.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithAtomicSync makes Sync write a sibling temporary file and rename it
// over the snapshot, so readers never observe a partially written file.
func WithAtomicSync(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

func buildOptions(path string, opts []Option) options {
	o := options{mode: DefaultFileMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.fs == nil {
		o.fs = filesystem.NewOS()
	}
	if o.codec == nil {
		o.codec = codec.ForPath(path)
	}
	if o.mode == 0 {
		o.mode = DefaultFileMode
	}
	return o
}
