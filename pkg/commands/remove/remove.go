package remove

import (
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/types"
)

// DeleteOptions defines the options for the Delete command.
type DeleteOptions struct {
	internal.StoreOptions

	// Keys to remove. Absent keys are reported, not treated as errors.
	Keys []string
}

// Delete removes keys and syncs once if anything was removed.
func Delete(opts DeleteOptions) (*types.DeleteResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Delete").Strs("keys", opts.Keys).Msg("Executing command")

	if len(opts.Keys) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no keys to delete")
	}

	w, err := opts.OpenWriter()
	if err != nil {
		return nil, err
	}

	result := &types.DeleteResult{Path: w.Store.Path(), Removed: []string{}}
	for _, k := range opts.Keys {
		removed, err := w.Delete(k)
		if err != nil {
			return nil, err
		}
		if removed {
			result.Removed = append(result.Removed, k)
		} else {
			result.Missing = append(result.Missing, k)
		}
	}

	if len(result.Removed) > 0 {
		if result.Synced, err = w.Finish(); err != nil {
			return nil, err
		}
	}

	log.Info().Str("command", "Delete").Int("removed", len(result.Removed)).Msg("Command finished")
	return result, nil
}
