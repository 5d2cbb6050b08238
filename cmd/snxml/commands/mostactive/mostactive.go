package mostactive

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/network"
)

// NewCommand creates the most-active command
func NewCommand() *cobra.Command {
	var (
		input string
		top   int
	)

	cmd := &cobra.Command{
		Use:     "most-active -i <input> [--top <n>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.most-active")

			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			renderer := cmdutil.NewRenderer(cmd, cfg)

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			doc, err := document.Parse(content)
			if err != nil {
				return err
			}

			graph := network.FromDocument(doc)
			stats := graph.TopActive(top)
			logger.Info().
				Int("users", graph.NodeCount()).
				Int("returned", len(stats)).
				Msg("Ranked users by out-degree")

			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStats(MsgTitle, stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().IntVar(&top, "top", 1, MsgFlagTop)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
