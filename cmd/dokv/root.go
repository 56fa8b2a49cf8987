// Package dokv implements the dokv command line interface.
package dokv

import (
	"github.com/arthur-debert/dokv/internal/version"
	"github.com/arthur-debert/dokv/pkg/cobrax/topics"
	"github.com/arthur-debert/dokv/pkg/commands"
	"github.com/arthur-debert/dokv/pkg/config"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/paths"
	"github.com/arthur-debert/dokv/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const groupStore = "store"

// app holds the state shared by all subcommands of one root command
type app struct {
	verbosity  int
	configFile string
	storePath  string
	format     string
	output     string
	autoSync   bool
	atomic     bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dokv",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Only store commands need configuration; version, help and
			// completion must work even with a broken config file.
			if cmd.GroupID != groupStore {
				logging.SetupLogger(a.verbosity, false)
				log.Debug().Str("command", cmd.Name()).Msg("Command started")
				return nil
			}

			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(a.verbosity, cfg.Log.File)
			log.Debug().
				Str("store", cfg.Store.Path).
				Str("format", cfg.Store.Format).
				Str("file_mode", cfg.FileModeString()).
				Bool("atomic", cfg.Store.Atomic).
				Bool("auto_sync", cfg.Store.AutoSync).
				Msg("Configuration loaded")
			logging.LogCommand(cmd.Name(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&a.storePath, "store", "s", "", MsgFlagStore)
	flags.StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	flags.StringVarP(&a.output, "output", "o", "", MsgFlagOutput)
	flags.BoolVar(&a.autoSync, "auto-sync", false, MsgFlagAutoSync)
	flags.BoolVar(&a.atomic, "atomic", false, MsgFlagAtomic)

	_ = rootCmd.RegisterFlagCompletionFunc("format", formatCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: groupStore, Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newGetCmd())
	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newDeleteCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newImportCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetCompletionCommandGroupID("misc")
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// loadConfig merges config sources with the flags the user actually set
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("store") {
		overrides["store.path"] = a.storePath
	}
	if flags.Changed("format") {
		overrides["store.format"] = a.format
	}
	if flags.Changed("output") {
		overrides["output.format"] = a.output
	}
	if flags.Changed("auto-sync") {
		overrides["store.auto_sync"] = a.autoSync
	}
	if flags.Changed("atomic") {
		overrides["store.atomic"] = a.atomic
	}
	return config.Load(config.LoadOptions{ConfigFile: a.configFile, Overrides: overrides})
}

// storeOptions turns the loaded config into command store options
func (a *app) storeOptions() (commands.StoreOptions, error) {
	path, err := paths.ResolveStorePath(a.cfg.Store.Path)
	if err != nil {
		return commands.StoreOptions{}, err
	}
	return commands.StoreOptions{
		Path:     path,
		Format:   a.cfg.Store.Format,
		FileMode: a.cfg.Store.FileMode,
		Atomic:   a.cfg.Store.Atomic,
		AutoSync: a.cfg.Store.AutoSync,
	}, nil
}

// renderer returns the output renderer for cmd's stdout
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
