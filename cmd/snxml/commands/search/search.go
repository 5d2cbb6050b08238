package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the search command
func NewCommand() *cobra.Command {
	var (
		input string
		word  string
		topic string
	)

	cmd := &cobra.Command{
		Use:     "search -i <input> (-w <word> | -t <topic>)",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.search")

			if word == "" && topic == "" {
				return errors.New(errors.ErrInvalidInput, "either --word or --topic is required")
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

			results := doc.SearchPosts(word, topic)
			logger.Info().
				Str("word", word).
				Str("topic", topic).
				Int("matches", len(results)).
				Msg("Search finished")

			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSearchResults(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&word, "word", "w", "", MsgFlagWord)
	cmd.Flags().StringVarP(&topic, "topic", "t", "", MsgFlagTopic)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
