package draw

import (
	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/network"
)

// NewCommand creates the draw command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:     "draw -i <input> [-o <output.dot>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.draw")

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			doc, err := document.Parse(content)
			if err != nil {
				return err
			}

			graph := network.FromDocument(doc)
			logger.Info().
				Int("nodes", graph.NodeCount()).
				Int("edges", graph.EdgeCount()).
				Msg("Rendered follower graph")

			return cmdutil.WriteResult(cmd, output, graph.DOT())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
