package cmd

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/sarif"
	"github.com/spf13/cobra"

	"kadanebench/bench"
	"kadanebench/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the benchmark and write the results as a SARIF file",
	Args:  cobra.NoArgs,
	RunE:  writeReport,
}

func init() {
	addParamFlags(reportCmd)
	reportCmd.Flags().StringP("file", "f", "kadanebench.sarif", "The path of the SARIF file to write")
	RootCmd.AddCommand(reportCmd)
}

func writeReport(cmd *cobra.Command, args []string) error {
	params, err := benchParams(cmd)
	if err != nil {
		return err
	}
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	res, err := bench.Run(cmd.Context(), params)
	if err != nil {
		return err
	}
	rep, err := report.Build(res, report.ToolVersion())
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	if err := writeSarifFile(path, rep); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printResult(out, res)
	fmt.Fprintf(out, "SARIF file written to %s\n", path)
	return nil
}

func writeSarifFile(path string, rep *sarif.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SARIF file: %w", err)
	}
	if err := report.Write(file, rep); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing SARIF report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing SARIF file: %w", err)
	}
	return nil
}
