package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/rgodd/construct"
	"github.com/katalvlaran/rgodd/metrics"
	"github.com/katalvlaran/rgodd/settings"
	"github.com/katalvlaran/rgodd/store"
)

type generateFlags struct {
	variant    construct.Variant
	count      int
	metricsOut string

	seed          int64
	minStates     int
	maxStates     int
	density       float64
	observable    int
	classes       int
	fraction      float64
	injectRetry   int
	generateRetry int
	maxPairStates int
	outDir        string
	format        string
	compress      bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random fault-labelled automata",
		Long: `Generate one or more automata. Flags select the variant:
--multi for several fault classes, --extra-normal to compose with a
fault-free component, --diagnosable to accept only diagnosable automata,
--save to write each DFAConfig into --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.run(cmd, a)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.variant.MultiFaulty, "multi", false, "inject several fault classes")
	fl.BoolVar(&f.variant.ExtraNormalComponent, "extra-normal", false, "compose with a fault-free component")
	fl.BoolVar(&f.variant.RequireDiagnosability, "diagnosable", false, "require a diagnosable result")
	fl.BoolVar(&f.variant.Save, "save", false, "save each DFAConfig")
	fl.IntVarP(&f.count, "count", "n", 1, "number of automata")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")

	fl.Int64Var(&f.seed, "seed", 0, "seed of the first automaton; later ones use seed+i")
	fl.IntVar(&f.minStates, "min", 0, "minimum number of states")
	fl.IntVar(&f.maxStates, "max", 0, "maximum number of states")
	fl.Float64Var(&f.density, "density", 0, "target average out-degree")
	fl.IntVar(&f.observable, "observable", 0, "number of observable symbols")
	fl.IntVar(&f.classes, "classes", 0, "fault classes in --multi mode")
	fl.Float64Var(&f.fraction, "fraction", 0, "share of transitions relabelled as faults")
	fl.IntVar(&f.injectRetry, "inject-retries", 0, "fault placements tried per structure")
	fl.IntVar(&f.generateRetry, "generate-retries", 0, "structures tried per automaton")
	fl.IntVar(&f.maxPairStates, "max-pair-states", 0, "twin-plant bound, 0 for none")
	fl.StringVarP(&f.outDir, "out", "o", "", "output directory for --save")
	fl.StringVar(&f.format, "format", "", "yaml or json")
	fl.BoolVar(&f.compress, "compress", false, "snappy-compress saved configs")

	return cmd
}

// apply copies the flags the user set over the loaded settings.
func (f *generateFlags) apply(fl *pflag.FlagSet, s *settings.Settings) {
	if fl.Changed("seed") {
		seed := f.seed
		s.Seed = &seed
	}
	set := func(name string, fn func()) {
		if fl.Changed(name) {
			fn()
		}
	}
	set("min", func() { s.MinStates = f.minStates })
	set("max", func() { s.MaxStates = f.maxStates })
	set("density", func() { s.Density = f.density })
	set("observable", func() { s.Observable = f.observable })
	set("classes", func() { s.FaultClasses = f.classes })
	set("fraction", func() { s.FaultFraction = f.fraction })
	set("inject-retries", func() { s.InjectRetries = f.injectRetry })
	set("generate-retries", func() { s.GenerateRetries = f.generateRetry })
	set("max-pair-states", func() { s.MaxPairStates = f.maxPairStates })
	set("out", func() { s.OutDir = f.outDir })
	set("format", func() { s.Format = f.format })
	set("compress", func() { s.Compress = f.compress })
}

func (f *generateFlags) run(cmd *cobra.Command, a *app) error {
	if f.count < 1 {
		return fmt.Errorf("generate: --count must be at least 1, got %d", f.count)
	}
	s := a.settings
	f.apply(cmd.Flags(), s)
	if err := s.Validate(); err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	c := construct.New(
		construct.WithLogger(a.log),
		construct.WithMetrics(rec),
		construct.WithStore(store.NewFileStore(s.OutDir, codecOf(s))),
		construct.WithDensity(s.Density),
		construct.WithObservable(s.Observable),
		construct.WithFaultClasses(s.FaultClasses),
		construct.WithFaultFraction(s.FaultFraction),
		construct.WithRetries(s.InjectRetries, s.GenerateRetries),
		construct.WithMaxPairStates(s.MaxPairStates),
	)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tSTATES\tTRANSITIONS\tFAULTS\tDIAGNOSABLE\tSAVED")
	var errs []error
	for i := 0; i < f.count; i++ {
		req := construct.Request{MinStates: s.MinStates, MaxStates: s.MaxStates, Options: f.variant}
		if s.Seed != nil {
			seed := *s.Seed + int64(i)
			req.Seed = &seed
		}
		res, err := c.Construct(cmd.Context(), req)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		st := res.Automaton.Stats()
		saved := res.SavedTo
		if res.SaveErr != nil {
			saved = "error: " + res.SaveErr.Error()
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			res.Config.ID, res.Config.Seed, st.States, st.Transitions, st.FaultTransitions,
			verdict(res.Config.Diagnosable), dash(saved))
	}
	if err := w.Flush(); err != nil {
		errs = append(errs, err)
	}
	if f.metricsOut != "" {
		errs = append(errs, writeMetrics(f.metricsOut, rec))
	}

	return errors.Join(errs...)
}

func codecOf(s *settings.Settings) store.Codec {
	c := store.YAML
	if s.Format == "json" {
		c = store.JSON
	}
	if s.Compress {
		c = store.Snappy(c)
	}

	return c
}

func writeMetrics(path string, rec *metrics.Recorder) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: metrics: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	return rec.WriteText(out)
}

func verdict(d *bool) string {
	switch {
	case d == nil:
		return "-"
	case *d:
		return "yes"
	default:
		return "no"
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
