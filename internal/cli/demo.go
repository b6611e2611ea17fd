package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halo-tui/halo/internal/config"
	"github.com/halo-tui/halo/internal/errors"
)

// Widget kinds the demo can host.
const (
	kindRing     = "ring"
	kindCircular = "circular"
	kindLinear   = "linear"
)

var demoCmd = &cobra.Command{
	Use:   "demo [ring|circular|linear]",
	Short: "Preview a progress indicator",
	Long: `Run an interactive preview of one of the halo indicators.

With no argument, an interactive picker offers the available widgets.

Keys inside the demo:
  up/down  adjust the value
  i        toggle indeterminate mode
  b        reverse the spin direction (ring only)
  q        quit`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{kindRing, kindCircular, kindLinear},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		return Demo(kind)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// Demo loads the config, resolves the widget kind, and runs the preview.
func Demo(kind string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	if kind == "" {
		kind, err = pickWidget()
		if err != nil {
			return err
		}
	}

	switch kind {
	case kindRing, kindCircular, kindLinear:
	default:
		return errors.New(errors.ErrWidget,
			fmt.Sprintf("Unknown widget: %s", kind),
			"Choose one of: ring, circular, linear")
	}

	return runDemo(kind, *cfg)
}

// pickWidget prompts for a widget kind. A non-TTY stdin cannot host the
// picker, so it errors instead of hanging.
func pickWidget() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New(errors.ErrTerm,
			"No widget specified and stdin is not a terminal",
			"Pass the widget name: halo demo ring")
	}

	var kind string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which indicator?").
				Options(
					huh.NewOption("Ring (custom two-phase loop)", kindRing),
					huh.NewOption("Circular (standard)", kindCircular),
					huh.NewOption("Linear (horizontal bar)", kindLinear),
				).
				Value(&kind),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrTerm,
			"Widget selection cancelled", "")
	}
	return kind, nil
}
