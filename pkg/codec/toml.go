package codec

import "github.com/pelletier/go-toml/v2"

// TOML stores the mapping as a single top-level table.
var TOML Codec = tomlCodec{}

type tomlCodec struct{}

func (tomlCodec) Name() string         { return "toml" }
func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
