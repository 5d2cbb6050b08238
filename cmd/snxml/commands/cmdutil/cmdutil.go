// Package cmdutil holds helpers shared by the snxml subcommands: config
// resolution from persistent flags, renderer selection, and output routing.
package cmdutil

import (
	"fmt"
	"os"

	"github.com/snxml/snxml/pkg/config"
	"github.com/snxml/snxml/pkg/fileio"
	"github.com/snxml/snxml/pkg/style"
	"github.com/spf13/cobra"
)

// LoadConfig resolves configuration, honoring the root --config flag when
// it is set.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// NewRenderer picks the renderer for a command, honoring the root
// --no-color flag over the configured color mode.
func NewRenderer(cmd *cobra.Command, cfg *config.Config) style.Renderer {
	noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
	if noColor {
		return style.NewPlainRenderer()
	}
	return style.NewRenderer(style.ParseColorMode(cfg.Output.Color), os.Stdout)
}

// WriteResult writes content to the output path, or to the command's stdout
// when the path is empty.
func WriteResult(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	return fileio.Write(path, []byte(content+"\n"))
}
