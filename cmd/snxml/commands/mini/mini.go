package mini

import (
	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/formatter"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the mini command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:     "mini -i <input> [-o <output>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.mini")

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			minified := formatter.Minify(content)
			logger.Info().
				Str("input", input).
				Int("before", len(content)).
				Int("after", len(minified)).
				Msg("Document minified")

			return cmdutil.WriteResult(cmd, output, minified)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
