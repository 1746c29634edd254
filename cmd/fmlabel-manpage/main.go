package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fmlabel/cmd/fmlabel"
	"github.com/arthur-debert/fmlabel/internal/version"
)

// Writes the man page of the root command to stdout, for packaging
func main() {
	rootCmd := fmlabel.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FMLABEL",
		Section: "1",
		Source:  "fmlabel " + version.Version,
		Manual:  "fmlabel manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
