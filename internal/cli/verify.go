package cli

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-mrunit/fixture"
	"github.com/litetable/litetable-mrunit/internal/config"
	"github.com/litetable/litetable-mrunit/record"
	"github.com/litetable/litetable-mrunit/verify"
	"github.com/spf13/cobra"
)

// errDiscrepancies fails the command after the report has been written.
var errDiscrepancies = errors.New("verification failed")

type verifyFlags struct {
	fixture string
	output  string
	runID   string
}

func newVerifyCmd(opts *options) *cobra.Command {
	f := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a recorded run against a fixture",
		Long: `Verify loads the expected rows of a YAML fixture and the outputs of one recorded run,
reconciles them and prints every discrepancy.

Examples:
  # Check the latest recorded run
  litetable-mrunit verify --fixture haiku.yaml

  # Check a specific run of a specific log, pairing rows by position
  litetable-mrunit verify --fixture haiku.yaml --output run.log --run 5d0c... --strategy positional`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, opts, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.fixture, "fixture", "", "YAML fixture with the expected rows")
	flags.StringVar(&f.output, "output", "", "record log to verify (default <record_dir>/runs/outputs.log)")
	flags.StringVar(&f.runID, "run", "", "run id to verify (default the last run in the log)")
	flags.String("strategy", config.StrategyKey, "reconciliation strategy: key or positional")
	flags.Bool("exact-keys", false, "compare keys exactly in positional mode")
	_ = cmd.MarkFlagRequired("fixture")
	_ = opts.v.BindPFlag("strategy", flags.Lookup("strategy"))
	_ = opts.v.BindPFlag("exact_keys", flags.Lookup("exact-keys"))

	return cmd
}

func runVerify(cmd *cobra.Command, opts *options, f *verifyFlags) error {
	fx, err := fixture.Load(f.fixture)
	if err != nil {
		return err
	}

	output := f.output
	if output == "" {
		output = record.DefaultPath(opts.cfg.RecordDir)
	}
	outputs, err := record.Load(output, f.runID)
	if err != nil {
		return err
	}

	// an explicit flag wins over the fixture, the fixture over the config file
	strategy := opts.cfg.Strategy
	if fx.Strategy != "" && !cmd.Flags().Changed("strategy") {
		strategy = fx.Strategy
	}

	var reconciler verify.Reconciler[string]
	switch strategy {
	case config.StrategyPositional:
		reconciler = verify.Positional[string]{ExactKeys: opts.cfg.ExactKeys, Logger: &opts.logger}
	default:
		reconciler = verify.KeyMatching[string]{Logger: &opts.logger}
	}

	opts.logger.Debug().Msgf("verifying %d output(s) from %s with the %s strategy", len(outputs),
		output, strategy)

	expected := fx.Rows()
	errs := reconciler.Reconcile(expected, outputs)

	rep := &report{
		fixture:  fx.Name,
		run:      f.runID,
		strategy: strategy,
		expected: len(expected),
		actual:   len(outputs),
		messages: errs.Messages(),
		err:      errs.AssertNone(),
	}
	if err = rep.write(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if rep.err != nil {
		return errDiscrepancies
	}
	return nil
}
