package dokv

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A persistent key-value store for the command line"
	MsgListShort       = "List all key-value pairs"
	MsgGetShort        = "Show the value for KEY"
	MsgSetShort        = "Set KEY to VALUE"
	MsgDeleteShort     = "Delete keys"
	MsgExportShort     = "Print the store in another format"
	MsgImportShort     = "Merge entries from another snapshot file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgGenConfigShort  = "Print or write the default configuration"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/dokv/config.toml)"
	MsgFlagStore    = "Snapshot file (default store.kv)"
	MsgFlagFormat   = "Snapshot format: json, toml, yaml or xml (default: by extension)"
	MsgFlagOutput   = "Output format: auto, term, text or json"
	MsgFlagAutoSync = "Write the snapshot after every change"
	MsgFlagAtomic   = "Write the snapshot through a temporary file and rename"
	MsgFlagTo       = "Target format (default: the store's format)"
	MsgFlagFrom     = "Format of FILE (default: by extension)"
	MsgFlagWrite    = "Write the config file instead of printing it"

	// Status messages
	MsgVersionFormat   = "dokv version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten   = "Wrote %s\n"
	MsgConfigKeptFound = "%s already exists, left unchanged\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/get-long.txt
	msgGetLongRaw string
	MsgGetLong    = strings.TrimSpace(msgGetLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
