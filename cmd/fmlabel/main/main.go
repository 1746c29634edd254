package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/fmlabel/cmd/fmlabel"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C4262E", Dark: "#FF5F5F"})

func main() {
	rootCmd := fmlabel.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
