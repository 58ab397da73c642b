package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrRunID = errors.New("run id must be a single path element")

// CleanOrCreateTempFolder makes sure path exists and is empty.
func CleanOrCreateTempFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing run folder: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("creating run folder: %w", err)
	}
	return nil
}

// RunFolder is the directory that holds the artifacts of the run with the given id.
// The id may not name output itself, its parent, or anything outside it.
func RunFolder(output, id string) (string, error) {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id {
		return "", fmt.Errorf("%w: %q", ErrRunID, id)
	}
	return filepath.Join(output, id), nil
}
