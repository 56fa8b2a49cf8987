package codec

import "gopkg.in/yaml.v3"

// YAML stores the mapping as a block mapping.
var YAML Codec = yamlCodec{}

type yamlCodec struct{}

func (yamlCodec) Name() string         { return "yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
