package compress

import (
	"github.com/spf13/cobra"

	"github.com/snxml/snxml/pkg/compress"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the compress command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:     "compress -i <input> [-o <output>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.compress")

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			data, err := compress.Compress([]byte(content))
			if err != nil {
				return err
			}

			if output == "" {
				output = input + ".snxz"
			}
			if err := fileio.Write(output, data); err != nil {
				return err
			}

			logger.Info().
				Str("input", input).
				Str("output", output).
				Int("before", len(content)).
				Int("after", len(data)).
				Msg("Compressed document")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
