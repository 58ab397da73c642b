package cmd

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kadanebench/cmd/util"
	"kadanebench/graph"
	"kadanebench/logger"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Run the benchmark under the CPU profiler and show where the time goes",
	Aliases: []string{"p"},
	Args:    cobra.NoArgs,
	RunE:    profileRun,
}

func init() {
	addParamFlags(profileCmd)
	profileCmd.Flags().StringP("id", "i", "", "The id of the run, used to name the output folder (default: a new uuid)")
	profileCmd.Flags().StringP("output", "o", "_data", "The path to the output folder")
	profileCmd.Flags().Int("top", 10, "The number of functions to list")
	profileCmd.Flags().String("focus", "", "Only list functions whose name contains this")
	profileCmd.Flags().Bool("lines", false, "List source lines instead of functions")
	profileCmd.Flags().Int("from-line", 0, "With --lines, the first source line to list")
	profileCmd.Flags().Int("to-line", 0, "With --lines, the last source line to list (0 for no limit)")
	RootCmd.AddCommand(profileCmd)
}

func profileRun(cmd *cobra.Command, args []string) error {
	params, err := benchParams(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	count, err := repeatCount(cmd)
	if err != nil {
		return err
	}
	id, err := f.GetString("id")
	if err != nil {
		return err
	}
	if len(id) == 0 {
		id = uuid.New().String()
	}
	output, err := f.GetString("output")
	if err != nil {
		return err
	}
	top, err := f.GetInt("top")
	if err != nil {
		return err
	}
	focus, err := f.GetString("focus")
	if err != nil {
		return err
	}
	lines, err := f.GetBool("lines")
	if err != nil {
		return err
	}
	fromLine, err := f.GetInt("from-line")
	if err != nil {
		return err
	}
	toLine, err := f.GetInt("to-line")
	if err != nil {
		return err
	}
	granularity := graph.Functions
	if lines {
		granularity = graph.Lines
	}

	folder, err := util.RunFolder(output, id)
	if err != nil {
		return err
	}
	results, profPath, err := util.RunWithProfile(cmd.Context(), params, count, folder)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printResult(out, results[0])

	g, prof, err := util.GetGraphFromFile(profPath, granularity)
	if err != nil {
		return err
	}
	logger.Debug("samples", len(prof.Sample), "nodes", len(g.Nodes), "profile parsed")
	if len(g.Nodes) == 0 {
		logger.Warn("profile", profPath, "no samples recorded, try a larger --count")
	}
	printHotspots(out, selectHotspots(g, focus, lines, fromLine, toLine), g.Total(), top)
	fmt.Fprintf(out, "Profile written to %s\n", profPath)
	return nil
}

// selectHotspots narrows g to the nodes matching focus and, for line graphs, the line range.
func selectHotspots(g *graph.Graph, focus string, lines bool, fromLine, toLine int) *graph.Graph {
	sel := g
	if focus != "" {
		sel = &graph.Graph{Nodes: sel.FindNodesByName(focus)}
	}
	if lines && (fromLine > 0 || toLine > 0) {
		if toLine <= 0 {
			toLine = math.MaxInt
		}
		sel = &graph.Graph{Nodes: sel.FindNodesByLine(fromLine, toLine)}
	}
	return sel
}
