// Package codec converts a store's key/value mapping to and from bytes.
//
// A Codec is a pure, stateless encoder/decoder pair. The store never
// depends on a particular encoding: it asks the registry for a codec by
// name or by file extension and only ever calls Marshal and Unmarshal.
//
// Four codecs are registered:
//
//	json  encoding/json, compact objects (the default, also used for .kv files)
//	toml  github.com/pelletier/go-toml/v2
//	yaml  gopkg.in/yaml.v3
//	xml   github.com/beevik/etree, string values only
package codec
