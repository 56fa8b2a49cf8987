package list

import (
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	internal.StoreOptions
}

// List returns every entry in the store, sorted by key.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Str("path", opts.Path).Msg("Executing command")

	s, err := opts.Open()
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		Path:    s.Path(),
		Entries: make([]types.Entry, 0, s.Len()),
	}
	for _, k := range s.Keys() {
		v, _ := s.Get(k)
		result.Entries = append(result.Entries, types.Entry{Key: k, Value: v})
	}

	log.Info().Str("command", "List").Int("entryCount", len(result.Entries)).Msg("Command finished")
	return result, nil
}
