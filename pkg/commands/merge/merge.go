package merge

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/filesystem"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/store"
	"github.com/arthur-debert/dokv/pkg/types"
)

// ImportOptions defines the options for the Import command.
type ImportOptions struct {
	internal.StoreOptions

	// File is the snapshot to read entries from. It must exist.
	File string
	// From is the codec of File. Empty picks by extension.
	From string
}

// Import copies every entry of File into the store, overwriting existing
// keys, and syncs once.
func Import(opts ImportOptions) (*types.SetResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Import").Str("file", opts.File).Msg("Executing command")

	src, err := openSource(opts)
	if err != nil {
		return nil, err
	}

	w, err := opts.OpenWriter()
	if err != nil {
		return nil, err
	}

	result := &types.SetResult{Path: w.Store.Path()}
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		replaced, err := w.Set(k, v)
		if err != nil {
			return nil, err
		}
		if replaced {
			result.Replaced = append(result.Replaced, k)
		}
		result.Written = append(result.Written, types.Entry{Key: k, Value: v})
	}

	if len(result.Written) > 0 {
		if result.Synced, err = w.Finish(); err != nil {
			return nil, err
		}
	}

	log.Info().Str("command", "Import").Int("written", len(result.Written)).Msg("Command finished")
	return result, nil
}

func openSource(opts ImportOptions) (*store.Strings, error) {
	if opts.File == "" {
		return nil, errors.New(errors.ErrInvalidInput, "import file is required")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if _, err := fsys.Stat(opts.File); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "import file %s does not exist", opts.File).
				WithDetail("path", opts.File)
		}
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "failed to read %s", opts.File).
			WithDetail("path", opts.File)
	}

	c := codec.ForPath(opts.File)
	if opts.From != "" {
		var err error
		if c, err = codec.Lookup(opts.From); err != nil {
			return nil, err
		}
	}
	return store.Open[string](opts.File, store.WithFS(fsys), store.WithCodec(c))
}
