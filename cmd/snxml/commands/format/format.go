package format

import (
	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/config"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/formatter"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the format command
func NewCommand() *cobra.Command {
	var (
		input    string
		output   string
		indent   string
		maxWidth int
	)

	cmd := &cobra.Command{
		Use:     "format -i <input> [-o <output>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.format")

			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("indent") {
				overrides["format.indent"] = indent
			}
			if cmd.Flags().Changed("max-width") {
				overrides["format.max_width"] = maxWidth
			}
			if len(overrides) > 0 {
				if cfg, err = config.Merge(cfg, overrides); err != nil {
					return err
				}
			}

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			formatted := formatter.Format(content, cfg.FormatterOptions())
			logger.Info().
				Str("input", input).
				Int("bytes", len(formatted)).
				Msg("Document formatted")

			return cmdutil.WriteResult(cmd, output, formatted)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&indent, "indent", formatter.DefaultIndent, MsgFlagIndent)
	cmd.Flags().IntVar(&maxWidth, "max-width", formatter.DefaultMaxWidth, MsgFlagMaxWidth)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
