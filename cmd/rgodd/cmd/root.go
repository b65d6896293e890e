package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rgodd/logging"
	"github.com/katalvlaran/rgodd/settings"
)

// app carries what the subcommands share after the root pre-run.
type app struct {
	configFile string
	envFile    string
	logLevel   string
	logDev     bool

	settings *settings.Settings
	log      *zap.Logger
}

// Execute runs the rgodd command tree; an interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "rgodd",
		Short:         "Random diagnosable DFA generator",
		Long:          `Generate random automata with labelled fault classes, check diagnosability with a twin-plant verifier, and inspect saved configurations.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML settings file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", ".env file with RGODD_* keys")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.logDev, "log-dev", false, "human-readable console logs")

	root.AddCommand(newGenerateCmd(a), newVerifyCmd(a), newInspectCmd(a))

	return root
}

// setup loads settings, applies the persistent flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := settings.Load(a.configFile, a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		s.LogLevel = a.logLevel
	}
	if flags.Changed("log-dev") {
		s.LogDev = a.logDev
	}
	if err = s.Validate(); err != nil {
		return err
	}
	a.settings = s
	a.log, err = logging.New(s.LogLevel, s.LogDev)

	return err
}
