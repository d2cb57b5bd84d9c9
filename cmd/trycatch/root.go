package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ib-77/trycatch/internal/logging"
	"github.com/ib-77/trycatch/internal/scenario"
	"github.com/ib-77/trycatch/pkg/catch"
)

// NewRootCmd builds the trycatch command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "trycatch",
		Short: "Run try/catch dispatch scenarios",
		Long: `trycatch executes operations that may fail, captures their errors and
dispatches them to handlers matched by exact error type.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			catch.SetLogger(logging.GetLogger("catch"))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newRunCmd(), newDemoCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Run scenarios from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open scenarios: %w", err)
			}
			defer f.Close()

			scenarios, err := scenario.Load(f)
			if err != nil {
				return err
			}
			return runScenarios(cmd, scenarios)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, scenario.Builtin())
		},
	}
}

func runScenarios(cmd *cobra.Command, scenarios []scenario.Scenario) error {
	reports := make([]scenario.Report, 0, len(scenarios))
	for _, s := range scenarios {
		rep, err := scenario.Run(s)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		reports = append(reports, rep)
	}

	log.Info().Int("scenarios", len(reports)).Msg("Scenarios finished")
	return scenario.WriteReports(cmd.OutOrStdout(), reports)
}
