package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snxml/snxml/cmd/snxml/commands/cmdutil"
	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/formatter"
	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/validator"
)

// NewCommand creates the verify command
func NewCommand() *cobra.Command {
	var (
		input  string
		output string
		fix    bool
	)

	cmd := &cobra.Command{
		Use:     "verify -i <input> [--fix [-o <output>]]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.verify")

			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			renderer := cmdutil.NewRenderer(cmd, cfg)

			content, err := fileio.Read(input)
			if err != nil {
				return err
			}

			report := validator.ValidateString(content)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReport(input, report))

			logger.Info().
				Str("input", input).
				Bool("valid", report.IsValid).
				Int("errors", report.ErrorCount).
				Msg("Validation finished")

			if report.IsValid {
				return nil
			}

			if !fix {
				return errors.Newf(errors.ErrInvalidInput,
					"%d validation error(s) in %s", report.ErrorCount, input)
			}

			fixed, _ := validator.Fix(content)
			formatted := formatter.Format(fixed, cfg.FormatterOptions())
			logger.Info().Str("input", input).Msg("Wrote repaired document")
			return cmdutil.WriteResult(cmd, output, formatted)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&fix, "fix", false, MsgFlagFix)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
