package export

import (
	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/logging"
)

// ExportOptions defines the options for the Export command.
type ExportOptions struct {
	internal.StoreOptions

	// To is the target codec name. Empty keeps the store's own codec.
	To string
}

// Export reads the store and returns its entries encoded with another codec.
// The store file is not modified.
func Export(opts ExportOptions) ([]byte, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Export").Str("to", opts.To).Msg("Executing command")

	s, err := opts.Open()
	if err != nil {
		return nil, err
	}

	target := s.Codec()
	if opts.To != "" {
		if target, err = codec.Lookup(opts.To); err != nil {
			return nil, err
		}
	}

	data := make(map[string]string, s.Len())
	for k, v := range s.All() {
		data[k] = v
	}
	out, err := codec.Encode(target, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreEncode, "failed to encode as %s", target.Name()).
			WithDetail("codec", target.Name())
	}

	log.Info().Str("command", "Export").Str("codec", target.Name()).Int("bytes", len(out)).Msg("Command finished")
	return out, nil
}
