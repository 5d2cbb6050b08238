package mutual

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/network"
)

// NewCommand creates the mutual command
func NewCommand() *cobra.Command {
	var (
		input string
		ids   []string
	)

	cmd := &cobra.Command{
		Use:     "mutual -i <input> --ids <id,id,...>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.mutual")

			if len(ids) < 2 {
				return errors.New(errors.ErrInvalidInput, "--ids needs at least two user ids")
			}

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
			for _, id := range ids {
				if !graph.HasNode(id) {
					return errors.Newf(errors.ErrUserNotFound, "user %s not in network", id)
				}
			}

			stats := graph.MutualFollowers(ids...)
			logger.Info().
				Strs("ids", ids).
				Int("mutual", len(stats)).
				Msg("Computed mutual followers")

			title := fmt.Sprintf(MsgTitleFormat, strings.Join(ids, ", "))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStats(title, stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringSliceVar(&ids, "ids", nil, MsgFlagIDs)
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("ids")

	return cmd
}
