package cmd

import (
	"github.com/spf13/cobra"

	"kadanebench/bench"
	"kadanebench/logger"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run the benchmark with custom parameters",
	Aliases: []string{"r"},
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	addParamFlags(runCmd)
	runCmd.Flags().Bool("verbose", false, "Print the seed and result of every trial")
	RootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	params, err := benchParams(cmd)
	if err != nil {
		return err
	}
	count, err := repeatCount(cmd)
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logger.Info("n", params.N, "seed", params.InitialSeed, "trials", params.Trials, "variant", params.Variant.String(), "starting benchmark")

	results, err := bench.Repeat(cmd.Context(), params, count)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, res := range results {
		if verbose {
			printTrials(out, res)
		}
		printResult(out, res)
	}
	if len(results) > 1 {
		printSummary(out, bench.Summarize(results))
	}
	return nil
}
