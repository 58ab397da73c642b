package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kadanebench/bench"
	"kadanebench/kadane"
)

// addParamFlags registers the benchmark parameters on cmd, defaulting to bench.DefaultParams.
func addParamFlags(cmd *cobra.Command) {
	d := bench.DefaultParams()
	cmd.Flags().IntP("length", "n", d.N, "The number of values generated per trial")
	cmd.Flags().Uint32P("seed", "s", d.InitialSeed, "The seed of the generator that seeds each trial")
	cmd.Flags().Int64("min", d.Range.Min, "The smallest generated value")
	cmd.Flags().Int64("max", d.Range.Max, "The largest generated value")
	cmd.Flags().IntP("trials", "t", d.Trials, "The number of trials to sum")
	cmd.Flags().StringP("variant", "v", d.Variant.String(), "The reducer reset policy: extend or reset")
	cmd.Flags().IntP("count", "c", 1, "The number of times to repeat the whole benchmark")
}

func benchParams(cmd *cobra.Command) (bench.Params, error) {
	var p bench.Params
	var err error
	f := cmd.Flags()
	if p.N, err = f.GetInt("length"); err != nil {
		return p, err
	}
	if p.InitialSeed, err = f.GetUint32("seed"); err != nil {
		return p, err
	}
	if p.Range.Min, err = f.GetInt64("min"); err != nil {
		return p, err
	}
	if p.Range.Max, err = f.GetInt64("max"); err != nil {
		return p, err
	}
	if p.Trials, err = f.GetInt("trials"); err != nil {
		return p, err
	}
	variant, err := f.GetString("variant")
	if err != nil {
		return p, err
	}
	if p.Variant, err = kadane.ParseVariant(variant); err != nil {
		return p, err
	}
	return p, p.Validate()
}

func repeatCount(cmd *cobra.Command) (int, error) {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: got %d", bench.ErrRepeatCount, count)
	}
	return count, nil
}
