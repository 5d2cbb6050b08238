package suggest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/network"
)

// NewCommand creates the suggest command
func NewCommand() *cobra.Command {
	var (
		input string
		id    string
		limit int
	)

	cmd := &cobra.Command{
		Use:     "suggest -i <input> --id <id> [--limit <n>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.suggest")

			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			renderer := cmdutil.NewRenderer(cmd, cfg)

			if !cmd.Flags().Changed("limit") {
				limit = cfg.Network.SuggestLimit
			}

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			doc, err := document.Parse(content)
			if err != nil {
				return err
			}

			graph := network.FromDocument(doc)
			if !graph.HasNode(id) {
				return errors.Newf(errors.ErrUserNotFound, "user %s not in network", id)
			}

			suggestions := graph.Suggest(id, limit)
			logger.Info().
				Str("id", id).
				Int("suggestions", len(suggestions)).
				Msg("Computed follow suggestions")

			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuggestions(id, suggestions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)
	cmd.Flags().IntVar(&limit, "limit", 0, MsgFlagLimit)
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
