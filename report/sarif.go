// Package report writes benchmark results as a SARIF 2.1.0 log, so they can be
// archived next to other static and dynamic analysis output.
package report

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/owenrumney/go-sarif/sarif"
	"golang.org/x/mod/semver"

	"kadanebench/bench"
)

const (
	ToolName = "kadanebench"
	ToolURI  = "https://en.wikipedia.org/wiki/Maximum_subarray_problem"

	TrialRule = "kadanebench/trial"
	TotalRule = "kadanebench/total"

	develVersion = "v0.0.0-devel"
)

// ToolVersion is the main module version from the build info, if it is a valid semver.
func ToolVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return develVersion
	}
	return normalizeVersion(bi.Main.Version)
}

func normalizeVersion(v string) string {
	if !semver.IsValid(v) {
		return develVersion
	}
	return semver.Canonical(v)
}

// Build creates a report with one note per trial and one for the total.
func Build(res bench.Result, toolVersion string) (*sarif.Report, error) {
	rep, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}
	run := sarif.NewRun(ToolName, ToolURI)
	if toolVersion != "" {
		run.Tool.Driver.Version = &toolVersion
	}
	run.AddRule(TrialRule).
		WithDescription("Maximum subarray sum of a single trial")
	run.AddRule(TotalRule).
		WithDescription("Sum of the per-trial maxima and the wall-clock time of the trial loop")

	p := res.Params
	for _, tr := range res.Trials {
		run.AddResult(TrialRule).
			WithLevel("note").
			WithMessage(sarif.NewMessage().WithText(fmt.Sprintf(
				"trial %d: seed=%d n=%d range=[%d,%d] variant=%s max=%d",
				tr.Index, tr.Seed, p.N, p.Range.Min, p.Range.Max, p.Variant, tr.MaxSum)))
	}
	run.AddResult(TotalRule).
		WithLevel("note").
		WithMessage(sarif.NewMessage().WithText(fmt.Sprintf(
			"total=%d runs=%d elapsed=%.6fs", res.Total, len(res.Trials), res.Elapsed.Seconds())))

	rep.AddRun(run)
	return rep, nil
}

func Write(w io.Writer, rep *sarif.Report) error {
	return rep.Write(w)
}
