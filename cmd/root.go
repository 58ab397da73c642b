/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kadanebench/bench"
	"kadanebench/logger"
)

// RootCmd runs the benchmark with the built-in parameters when called without
// any subcommands.
var RootCmd = &cobra.Command{
	Use:   "kadanebench",
	Short: "Times Kadane's maximum subarray sum over LCG generated sequences",
	Long: `kadanebench generates 20 sequences of 10000 integers in [-10, 10] from a
linear congruential generator seeded with 42, sums the maximum subarray sum of
each, and reports the total together with the time the trials took.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		format, err := cmd.Flags().GetString("log-format")
		if err != nil {
			return err
		}
		if err := logger.SetFormat(format); err != nil {
			return err
		}
		return logger.SetLevel(level)
	},
	RunE: runDefault,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		reportFailure(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func reportFailure(w io.Writer, err error) {
	logger.Error(err, "command failed")
	fmt.Fprintln(w, "Failed to execute command: "+err.Error())
}

func init() {
	RootCmd.PersistentFlags().String("log-format", "console", "Diagnostic log format on stderr (console, json)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level on stderr (trace, debug, info, warn, error, disabled)")
}

func runDefault(cmd *cobra.Command, args []string) error {
	res, err := bench.Run(cmd.Context(), bench.DefaultParams())
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}
