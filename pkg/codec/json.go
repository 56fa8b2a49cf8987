package codec

import "encoding/json"

// JSON is the default codec: one compact JSON object per file.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json", ".kv"} }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
