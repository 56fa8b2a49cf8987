package dokv

import (
	"fmt"

	"github.com/arthur-debert/dokv/internal/version"
	"github.com/arthur-debert/dokv/pkg/codec"
	"github.com/arthur-debert/dokv/pkg/commands"
	"github.com/arthur-debert/dokv/pkg/logging"
	"github.com/arthur-debert/dokv/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func formatCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return codec.Names(), cobra.ShellCompDirectiveNoFileComp
}

// keysCompletion completes keys present in the configured store
func (a *app) keysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	a.cfg = cfg
	so, err := a.storeOptions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	result, err := commands.List(commands.ListOptions{StoreOptions: so})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	used := make(map[string]bool, len(args))
	for _, arg := range args {
		used[arg] = true
	}
	var keys []string
	for _, e := range result.Entries {
		if !used[e.Key] {
			keys = append(keys, e.Key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: groupStore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			result, err := commands.List(commands.ListOptions{StoreOptions: so})
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "get KEY",
		Short:             MsgGetShort,
		Long:              MsgGetLong,
		GroupID:           groupStore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.keysCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			result, err := commands.Get(commands.GetOptions{StoreOptions: so, Key: args[0]})
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

func (a *app) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE [KEY VALUE...]",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		GroupID: groupStore,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := commands.ParsePairs(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.set")
			done := logging.LogOperationStart(logger, "set")
			defer done()

			pairs, err := commands.ParsePairs(args)
			if err != nil {
				return err
			}
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			result, err := commands.Set(commands.SetOptions{StoreOptions: so, Pairs: pairs})
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "delete KEY...",
		Aliases:           []string{"rm"},
		Short:             MsgDeleteShort,
		Long:              MsgDeleteLong,
		GroupID:           groupStore,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: a.keysCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			result, err := commands.Delete(commands.DeleteOptions{StoreOptions: so, Keys: args})
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: groupStore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			out, err := commands.Export(commands.ExportOptions{StoreOptions: so, To: to})
			if err != nil {
				return err
			}
			if len(out) > 0 && out[len(out)-1] != '\n' {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	_ = cmd.RegisterFlagCompletionFunc("to", formatCompletion)
	return cmd
}

func (a *app) newImportCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:     "import FILE",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		GroupID: groupStore,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so, err := a.storeOptions()
			if err != nil {
				return err
			}
			result, err := commands.Import(commands.ImportOptions{StoreOptions: so, File: args[0], From: from})
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	_ = cmd.RegisterFlagCompletionFunc("from", formatCompletion)
	return cmd
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile
			if path == "" {
				path = paths.ConfigFile()
			}
			result, err := commands.GenConfig(commands.GenConfigOptions{Path: path, Write: write})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !write:
				_, err = fmt.Fprint(out, result.ConfigContent)
			case len(result.FilesWritten) == 0:
				_, err = fmt.Fprintf(out, MsgConfigKeptFound, path)
			default:
				_, err = fmt.Fprintf(out, MsgConfigWritten, path)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
