package codec

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dokv/pkg/errors"
)

// Codec encodes and decodes a whole snapshot.
type Codec interface {
	// Name is the registry key, e.g. "json".
	Name() string
	// Extensions lists the file extensions (with leading dot) that select this codec.
	Extensions() []string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Default is used when a path's extension does not select a codec.
var Default Codec = JSON

var registry = map[string]Codec{}

func init() {
	for _, c := range []Codec{JSON, TOML, YAML, XML} {
		registry[c.Name()] = c
	}
}

// Lookup returns the codec registered under name (case-insensitive).
func Lookup(name string) (Codec, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Newf(errors.ErrCodecUnknown, "unknown format %q (want one of %s)",
			name, strings.Join(Names(), ", ")).
			WithDetail("format", name)
	}
	return c, nil
}

// ForPath picks a codec from the extension of path, falling back to Default.
func ForPath(path string) Codec {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Default
	}
	for _, name := range Names() {
		c := registry[name]
		for _, e := range c.Extensions() {
			if e == ext {
				return c
			}
		}
	}
	return Default
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode marshals m with c. Strings that are not valid UTF-8 are refused
// with CODEC_UNSUPPORTED so that every encoded snapshot decodes back to m.
func Encode[V any](c Codec, m map[string]V) ([]byte, error) {
	if m == nil {
		m = map[string]V{}
	}
	if err := checkUTF8(m); err != nil {
		return nil, err
	}
	return c.Marshal(m)
}

// Decode unmarshals data with c. On success the returned map is never nil,
// even for encodings where an empty document decodes to null.
func Decode[V any](c Codec, data []byte) (map[string]V, error) {
	var m map[string]V
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]V{}
	}
	return m, nil
}
