package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3it/gorecurcopy"
	"github.com/spf13/cobra"

	"kadanebench/cmd/util"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the artifacts of a profiled run to another folder",
	Args:  cobra.NoArgs,
	RunE:  export,
}

func init() {
	exportCmd.Flags().StringP("id", "i", "", "The id of the run to export")
	exportCmd.Flags().StringP("output", "o", "_data", "The folder the run was written to")
	exportCmd.Flags().StringP("dest", "d", "", "The destination folder")
	RootCmd.AddCommand(exportCmd)
}

func export(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	id, err := f.GetString("id")
	if err != nil {
		return err
	}
	output, err := f.GetString("output")
	if err != nil {
		return err
	}
	dest, err := f.GetString("dest")
	if err != nil {
		return err
	}
	if len(id) == 0 || len(dest) == 0 {
		return errors.New("both --id and --dest are required")
	}

	src, err := util.RunFolder(output, id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("run %s not found: %w", id, err)
	}
	if err := os.MkdirAll(dest, os.ModePerm); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	if err := gorecurcopy.CopyDirectory(src, dest); err != nil {
		return fmt.Errorf("copying run folder: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Run %s exported to %s\n", id, dest)
	return nil
}
