package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrUnresolved is returned by check when a declaration has a type that
// could not be determined.
var ErrUnresolved = errors.New("unresolved declarations")

var checkStrict bool

// CheckCmd fails when any declaration of a fixture file cannot be resolved.
var CheckCmd = &cobra.Command{
	Use:   "check <fixture.yaml>",
	Short: "Fail if any declaration type cannot be determined",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, validation, err := generate(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		unresolved := r.Unresolved()
		for _, e := range unresolved {
			fmt.Fprintf(out, "unresolved: %s (%s)\n", e.Declaration, e.Target)
		}

		if len(unresolved) > 0 {
			return fmt.Errorf("%w: %d", ErrUnresolved, len(unresolved))
		}

		if checkStrict && (validation.HasWarnings() || r.Diagnostics.HasWarnings()) {
			for _, d := range append(validation.Warnings, r.Diagnostics.Warnings...) {
				fmt.Fprintf(out, "warning: %s\n", d)
			}

			return errors.New("warnings found in strict mode")
		}

		fmt.Fprintln(out, "ok")

		return nil
	},
}

func init() {
	CheckCmd.Flags().BoolVar(&checkStrict, "strict", false, "Also fail on warnings")
}
