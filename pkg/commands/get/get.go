package get

import (
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/types"
)

// GetOptions defines the options for the Get command.
type GetOptions struct {
	internal.StoreOptions

	// Key is the key to look up.
	Key string
}

// Get looks up a single key. A missing key yields Found=false, not an error.
func Get(opts GetOptions) (*types.GetResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Get").Str("key", opts.Key).Msg("Executing command")

	s, err := opts.Open()
	if err != nil {
		return nil, err
	}

	v, ok := s.Get(opts.Key)
	log.Info().Str("command", "Get").Bool("found", ok).Msg("Command finished")
	return &types.GetResult{Key: opts.Key, Value: v, Found: ok}, nil
}
