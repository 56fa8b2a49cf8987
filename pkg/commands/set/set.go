package set

import (
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/types"
)

// SetOptions defines the options for the Set command.
type SetOptions struct {
	internal.StoreOptions

	// Pairs are applied in order; a later pair wins over an earlier one
	// with the same key.
	Pairs []types.Entry
}

// Set writes every pair and syncs once (or after each pair with auto-sync).
func Set(opts SetOptions) (*types.SetResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Set").Int("pairCount", len(opts.Pairs)).Msg("Executing command")

	if len(opts.Pairs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to set")
	}

	w, err := opts.OpenWriter()
	if err != nil {
		return nil, err
	}

	result := &types.SetResult{Path: w.Store.Path()}
	for _, p := range opts.Pairs {
		replaced, err := w.Set(p.Key, p.Value)
		if err != nil {
			return nil, err
		}
		if replaced {
			result.Replaced = append(result.Replaced, p.Key)
		}
		result.Written = append(result.Written, p)
		log.Debug().Str("key", p.Key).Bool("replaced", replaced).Msg("Set key")
	}

	if result.Synced, err = w.Finish(); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Set").Int("written", len(result.Written)).Msg("Command finished")
	return result, nil
}

// ParsePairs turns KEY VALUE [KEY VALUE...] arguments into entries.
func ParsePairs(args []string) ([]types.Entry, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "expected KEY VALUE pairs, got %d argument(s)", len(args))
	}
	pairs := make([]types.Entry, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, types.Entry{Key: args[i], Value: args[i+1]})
	}
	return pairs, nil
}
