// Package commands provides the command implementations behind the dokv CLI.
//
// Each command lives in its own subdirectory and takes an options struct
// embedding StoreOptions:
//   - list/   - List command
//   - get/    - Get command
//   - set/    - Set command
//   - remove/ - Delete command
//   - export/ - Export command
//   - merge/  - Import command
//   - genconfig/ - GenConfig command (no store involved)
//   - internal/ - Shared store opening and sync handling
//
// This file re-exports the command functions so callers only import one package.
package commands

import (
	"github.com/arthur-debert/dokv/pkg/commands/export"
	"github.com/arthur-debert/dokv/pkg/commands/genconfig"
	"github.com/arthur-debert/dokv/pkg/commands/get"
	"github.com/arthur-debert/dokv/pkg/commands/internal"
	"github.com/arthur-debert/dokv/pkg/commands/list"
	"github.com/arthur-debert/dokv/pkg/commands/merge"
	"github.com/arthur-debert/dokv/pkg/commands/remove"
	"github.com/arthur-debert/dokv/pkg/commands/set"
	"github.com/arthur-debert/dokv/pkg/types"
)

// StoreOptions selects and configures the store a command works on.
type StoreOptions = internal.StoreOptions

// List returns every entry, sorted by key.
type ListOptions = list.ListOptions

func List(opts ListOptions) (*types.ListResult, error) {
	return list.List(opts)
}

// Get looks up a single key. A missing key is not an error.
type GetOptions = get.GetOptions

func Get(opts GetOptions) (*types.GetResult, error) {
	return get.Get(opts)
}

// Set writes one or more pairs and syncs once.
type SetOptions = set.SetOptions

func Set(opts SetOptions) (*types.SetResult, error) {
	return set.Set(opts)
}

// ParsePairs turns KEY VALUE [KEY VALUE...] arguments into entries.
func ParsePairs(args []string) ([]types.Entry, error) {
	return set.ParsePairs(args)
}

// Delete removes keys and syncs once.
type DeleteOptions = remove.DeleteOptions

func Delete(opts DeleteOptions) (*types.DeleteResult, error) {
	return remove.Delete(opts)
}

// Export re-encodes the snapshot with another codec.
type ExportOptions = export.ExportOptions

func Export(opts ExportOptions) ([]byte, error) {
	return export.Export(opts)
}

// Import merges the entries of another snapshot file into the store.
type ImportOptions = merge.ImportOptions

func Import(opts ImportOptions) (*types.SetResult, error) {
	return merge.Import(opts)
}

// GenConfig outputs or writes the default configuration file.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
