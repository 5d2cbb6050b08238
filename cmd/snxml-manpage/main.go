package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/snxml/snxml/cmd/snxml/commands"
	"github.com/snxml/snxml/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SNXML",
		Section: "1",
		Source:  "snxml " + version.Version,
		Manual:  "snxml manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
