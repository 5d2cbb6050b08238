package jsonexport

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the json command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:     "json -i <input> [-o <output>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.json")

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			doc, err := document.Parse(content)
			if err != nil {
				return err
			}

			records := doc.Records()
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "marshalling records")
			}

			logger.Info().
				Str("input", input).
				Int("users", len(records)).
				Msg("Exported records")

			return cmdutil.WriteResult(cmd, output, string(data))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
