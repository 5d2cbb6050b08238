package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/compress"
	"github.com/snxml/snxml/cmd/snxml/commands/decompress"
	"github.com/snxml/snxml/cmd/snxml/commands/draw"
	"github.com/snxml/snxml/cmd/snxml/commands/format"
	"github.com/snxml/snxml/cmd/snxml/commands/jsonexport"
	"github.com/snxml/snxml/cmd/snxml/commands/mini"
	"github.com/snxml/snxml/cmd/snxml/commands/mostactive"
	"github.com/snxml/snxml/cmd/snxml/commands/mostinfluencer"
	"github.com/snxml/snxml/cmd/snxml/commands/mutual"
	"github.com/snxml/snxml/cmd/snxml/commands/search"
	"github.com/snxml/snxml/cmd/snxml/commands/suggest"
	"github.com/snxml/snxml/cmd/snxml/commands/verify"
	"github.com/snxml/snxml/internal/version"
	"github.com/snxml/snxml/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "snxml",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but exit non-zero
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().String("config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: MsgGroupCore,
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: MsgGroupMisc,
	})

	// Add all commands
	rootCmd.AddCommand(format.NewCommand())
	rootCmd.AddCommand(mini.NewCommand())
	rootCmd.AddCommand(verify.NewCommand())
	rootCmd.AddCommand(jsonexport.NewCommand())
	rootCmd.AddCommand(search.NewCommand())
	rootCmd.AddCommand(mostactive.NewCommand())
	rootCmd.AddCommand(mostinfluencer.NewCommand())
	rootCmd.AddCommand(mutual.NewCommand())
	rootCmd.AddCommand(suggest.NewCommand())
	rootCmd.AddCommand(draw.NewCommand())
	rootCmd.AddCommand(compress.NewCommand())
	rootCmd.AddCommand(decompress.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "snxml version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "completion [bash|zsh|fish|powershell]",
		Short:   MsgCompletionShort,
		GroupID: "misc",
		Long: `To load completions:

Bash:
  $ source <(snxml completion bash)

Zsh:
  $ snxml completion zsh > "${fpath[1]}/_snxml"

Fish:
  $ snxml completion fish | source

PowerShell:
  PS> snxml completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
