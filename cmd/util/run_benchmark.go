package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"

	"kadanebench/bench"
	"kadanebench/logger"
)

const CPUProfileName = "cpu.pprof"

// RunWithProfile runs the benchmark count times while recording a CPU profile
// into folderPath. It returns the results and the path of the profile.
func RunWithProfile(ctx context.Context, params bench.Params, count int, folderPath string) ([]bench.Result, string, error) {
	if err := CleanOrCreateTempFolder(folderPath); err != nil {
		return nil, "", err
	}
	profPath := filepath.Join(folderPath, CPUProfileName)
	f, err := os.Create(profPath)
	if err != nil {
		return nil, "", fmt.Errorf("creating cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, "", fmt.Errorf("starting cpu profile: %w", err)
	}
	logger.Debug("profile", profPath, "count", count, "cpu profile started")
	results, err := bench.Repeat(ctx, params, count)
	pprof.StopCPUProfile()
	if err != nil {
		return nil, "", err
	}
	return results, profPath, nil
}
