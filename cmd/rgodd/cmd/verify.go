package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rgodd/store"
	"github.com/katalvlaran/rgodd/verifier"
)

var errNotDiagnosable = errors.New("automaton is not diagnosable")

func newVerifyCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check diagnosability of a saved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadFile(args[0])
			if err != nil {
				return err
			}
			auto, err := cfg.Build()
			if err != nil {
				return err
			}
			res, err := verifier.Verify(auto, verifier.WithMaxPairStates(a.settings.MaxPairStates))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:      %s\n", cfg.ID)
			fmt.Fprintf(out, "twin plant:  %d pair states, %d edges\n", res.PairStates, res.PairEdges)
			fmt.Fprintf(out, "diagnosable: %t\n", res.Diagnosable)
			if res.Diagnosable {
				return nil
			}
			fmt.Fprintf(out, "ambiguous:   %s\n", strings.Join(res.Ambiguous, ", "))
			w := res.Witness
			fmt.Fprintf(out, "witness (%s):\n", w.Class)
			for i, sym := range w.Symbols {
				fmt.Fprintf(out, "  %v -%s-> %v\n", w.Cycle[i], sym, w.Cycle[i+1])
			}
			if strict {
				return fmt.Errorf("%s: %w", args[0], errNotDiagnosable)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when not diagnosable")

	return cmd
}
