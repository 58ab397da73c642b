package cmd

import (
	"fmt"
	"io"
	"time"

	"kadanebench/bench"
	"kadanebench/graph"
)

func printResult(w io.Writer, res bench.Result) {
	fmt.Fprintf(w, "Total Maximum Subarray Sum (%d runs): %d\n", len(res.Trials), res.Total)
	fmt.Fprintf(w, "Execution Time: %s seconds\n", formatSeconds(res.Elapsed))
}

func printTrials(w io.Writer, res bench.Result) {
	for _, tr := range res.Trials {
		fmt.Fprintf(w, "Trial %2d: seed=%d max=%d\n", tr.Index+1, tr.Seed, tr.MaxSum)
	}
}

func printSummary(w io.Writer, s bench.Summary) {
	fmt.Fprintf(w, "Execution Time over %d repetitions: min %s, mean %s, max %s seconds\n",
		s.Runs, formatSeconds(s.Min), formatSeconds(s.Mean), formatSeconds(s.Max))
}

// printHotspots lists the hottest nodes of g as shares of total.
func printHotspots(w io.Writer, g *graph.Graph, total int64, top int) {
	fmt.Fprintf(w, "Hottest functions (%s sampled):\n", time.Duration(total))
	for _, n := range g.Hottest(top) {
		fmt.Fprintf(w, "%7.2f%% %12s  %s\n", n.Percent(total), time.Duration(n.Cum), n.Info)
	}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}
