package internal

import (
	"io/fs"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/store"
	"github.com/arthur-debert/dokv/pkg/types"
)

// StoreOptions selects and configures the store a command works on.
type StoreOptions struct {
	// Path is the snapshot file.
	Path string
	// Format is a codec name. Empty picks the codec from the file extension.
	Format string
	// FileMode is used when the snapshot is created. Zero means store.DefaultFileMode.
	FileMode fs.FileMode
	// Atomic writes through a temporary file and rename.
	Atomic bool
	// AutoSync persists after every mutation instead of once per command.
	AutoSync bool
	// FS overrides the filesystem; nil uses the OS.
	FS types.FS
}

// Codec resolves the configured codec.
func (o StoreOptions) Codec() (codec.Codec, error) {
	if o.Format == "" {
		return codec.ForPath(o.Path), nil
	}
	return codec.Lookup(o.Format)
}

// Open loads the store described by o.
func (o StoreOptions) Open() (*store.Strings, error) {
	if o.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "store path is required")
	}
	c, err := o.Codec()
	if err != nil {
		return nil, err
	}
	opts := []store.Option{store.WithCodec(c), store.WithAtomicSync(o.Atomic)}
	if o.FileMode != 0 {
		opts = append(opts, store.WithFileMode(o.FileMode))
	}
	if o.FS != nil {
		opts = append(opts, store.WithFS(o.FS))
	}
	return store.Open[string](o.Path, opts...)
}

// OpenWriter loads the store for mutation.
func (o StoreOptions) OpenWriter() (*Writer, error) {
	s, err := o.Open()
	if err != nil {
		return nil, err
	}
	w := &Writer{Store: s}
	if o.AutoSync {
		w.auto = store.NewAutoSync(s)
	}
	return w, nil
}

// Writer applies mutations and persists them either after each one
// (auto-sync) or once in Finish.
type Writer struct {
	Store  *store.Strings
	auto   *store.AutoSync[string]
	dirty  bool
	synced bool
}

// Set writes key and reports whether it replaced an existing value.
func (w *Writer) Set(key, value string) (bool, error) {
	_, existed := w.Store.Get(key)
	if w.auto != nil {
		if err := w.auto.Set(key, value); err != nil {
			return existed, err
		}
		w.synced = true
		return existed, nil
	}
	w.Store.Set(key, value)
	w.dirty = true
	return existed, nil
}

// Delete removes key and reports whether it was present.
func (w *Writer) Delete(key string) (bool, error) {
	if w.auto != nil {
		removed, err := w.auto.Delete(key)
		if err != nil {
			return removed, err
		}
		w.synced = w.synced || removed
		return removed, nil
	}
	_, removed := w.Store.Delete(key)
	w.dirty = w.dirty || removed
	return removed, nil
}

// Finish syncs pending mutations and reports whether the file was written
// by this command.
func (w *Writer) Finish() (bool, error) {
	if w.auto != nil {
		return w.synced, nil
	}
	if !w.dirty {
		return false, nil
	}
	if err := w.Store.Sync(); err != nil {
		return false, err
	}
	w.dirty = false
	return true, nil
}
