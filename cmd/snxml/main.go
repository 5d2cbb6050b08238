package main

import (
	"fmt"
	"os"

	"github.com/snxml/snxml/cmd/snxml/commands"
	"github.com/snxml/snxml/pkg/style"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.ColorAuto, os.Stderr)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
