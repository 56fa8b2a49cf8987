package store

import (
	stderrors "errors"
	"io/fs"
	"iter"
	"maps"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/types"
)

// Store is an in-memory mapping bound to one snapshot file.
type Store[V any] struct {
	fs     types.FS
	path   string
	codec  codec.Codec
	mode   fs.FileMode
	atomic bool
	data   map[string]V
}

// Strings is a store of string values, the shape used by the CLI.
type Strings = Store[string]

// New returns an empty store bound to path. Nothing is read or written.
func New[V any](path string, opts ...Option) *Store[V] {
	o := buildOptions(path, opts)
	return &Store[V]{
		fs:     o.fs,
		path:   path,
		codec:  o.codec,
		mode:   o.mode,
		atomic: o.atomic,
		data:   make(map[string]V),
	}
}

// Open loads the snapshot at path. A missing file yields an empty store;
// the file is created by the first Sync. Any other read error, or contents
// that do not decode, is returned.
func Open[V any](path string, opts ...Option) (*Store[V], error) {
	s := New[V](path, opts...)

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "failed to read %s", path).
			WithDetail("path", path)
	}

	data, err := codec.Decode[V](s.codec, raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreDecode, "failed to decode %s as %s", path, s.codec.Name()).
			WithDetail("path", path).
			WithDetail("codec", s.codec.Name())
	}
	s.data = data
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set inserts or overwrites key in memory and returns the previous value,
// if any. Call Sync to persist.
func (s *Store[V]) Set(key string, value V) (V, bool) {
	prev, ok := s.data[key]
	s.data[key] = value
	return prev, ok
}

// Delete removes key from memory and returns the removed value, if any.
func (s *Store[V]) Delete(key string) (V, bool) {
	prev, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	return prev, ok
}

// Sync rewrites the snapshot file from the current mapping.
func (s *Store[V]) Sync() error {
	raw, err := codec.Encode(s.codec, s.data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreEncode, "failed to encode %s as %s", s.path, s.codec.Name()).
			WithDetail("path", s.path).
			WithDetail("codec", s.codec.Name())
	}

	if s.atomic {
		err = s.writeAtomic(raw)
	} else {
		err = s.fs.WriteFile(s.path, raw, s.mode)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write %s", s.path).
			WithDetail("path", s.path)
	}
	return nil
}

func (s *Store[V]) writeAtomic(raw []byte) error {
	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := s.fs.WriteFile(tmp, raw, s.mode); err != nil {
		return err
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// All iterates over a copy of the mapping taken when iteration starts.
// Order is unspecified.
func (s *Store[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for k, v := range maps.Clone(s.data) {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns the keys in sorted order.
func (s *Store[V]) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (s *Store[V]) Len() int {
	return len(s.data)
}

// Path returns the snapshot path the store is bound to.
func (s *Store[V]) Path() string {
	return s.path
}

// Codec returns the snapshot encoding.
func (s *Store[V]) Codec() codec.Codec {
	return s.codec
}
