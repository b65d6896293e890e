package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rgodd/bfs"
	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/store"
)

func newInspectCmd(_ *app) *cobra.Command {
	var observable bool
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print statistics and access words of a saved configuration",
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

			out := cmd.OutOrStdout()
			st := auto.Stats()
			fmt.Fprintf(out, "config:       %s (seed %d)\n", cfg.ID, cfg.Seed)
			fmt.Fprintf(out, "alphabet:     %v + %d fault class(es)\n", cfg.Observable, len(cfg.FaultClasses))
			fmt.Fprintf(out, "states:       %d (initial %d)\n", st.States, auto.Initial())
			fmt.Fprintf(out, "transitions:  %d (%d fault, %d self-loops, max out-degree %d)\n",
				st.Transitions, st.FaultTransitions, st.SelfLoops, st.MaxOutDegree)
			names := make([]string, 0, len(st.PerClass))
			for name := range st.PerClass {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "  %s: %d\n", name, st.PerClass[name])
			}

			var opts []bfs.Option
			if observable {
				opts = append(opts, bfs.ObservableOnly(auto.Alphabet()))
			}
			reach, err := bfs.BFS(auto, auto.Initial(), opts...)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STATE\tDEPTH\tACCESS WORD\tENABLED")
			for _, s := range auto.States() {
				word := "unreachable"
				depth := "-"
				if reach.Reached(s) {
					syms, _ := reach.WordTo(s)
					word = render(syms)
					depth = fmt.Sprint(reach.Depth[s])
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s, depth, word, render(auto.Enabled(s)))
			}

			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&observable, "observable-only", false, "access words over observable symbols only")

	return cmd
}

func render(syms []core.Symbol) string {
	if len(syms) == 0 {
		return "ε"
	}
	b := make([]rune, len(syms))
	for i, s := range syms {
		b[i] = rune(s)
	}

	return string(b)
}
