package util

import (
	"fmt"
	"os"

	"github.com/google/pprof/profile"

	"kadanebench/graph"
)

func GetProfileDataFromFile(path string) (*profile.Profile, error) {
	rawProfile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer rawProfile.Close()
	prof, err := profile.Parse(rawProfile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return prof, nil
}

// GetGraphFromFile reads a profile and builds its call graph.
func GetGraphFromFile(path string, g graph.Granularity) (*graph.Graph, *profile.Profile, error) {
	prof, err := GetProfileDataFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return graph.GetGraphFromProfile(prof, g), prof, nil
}
