package decompress

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/pkg/compress"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/logging"
)

// NewCommand creates the decompress command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:     "decompress -i <input.snxz> [-o <output>]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.decompress")

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			data, err := compress.Decompress([]byte(content))
			if err != nil {
				return err
			}

			if output == "" && strings.HasSuffix(input, ".snxz") {
				output = strings.TrimSuffix(input, ".snxz")
			}

			logger.Info().
				Str("input", input).
				Int("bytes", len(data)).
				Msg("Decompressed document")

			// Bytes must round-trip exactly, so skip the newline WriteResult adds.
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			return fileio.Write(output, data)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
