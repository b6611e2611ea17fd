// Package cli implements the halo demo command line: a small cobra app for
// previewing the widget library's indicators in a terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Persistent flags shared by all commands.
var (
	configFlag  string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "halo",
	Short: "Animated progress indicators for the terminal",
	Long: `halo is a demo for the halo widget library: animated ring, circular,
and linear progress indicators for Bubble Tea applications.

Run 'halo demo' to preview the widgets interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default .halo.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	cobra.OnInitialize(applyColorProfile)
}

// applyColorProfile downgrades rendering to monochrome when requested.
func applyColorProfile() {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
