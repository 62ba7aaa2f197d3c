package schedule

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadTasksFile reads reference tasks from a file, choosing the decoder by
// extension (.csv, .json, .yaml, .yml).
func LoadTasksFile(path string) ([]Task, error) {
	switch ext(path) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open tasks file: %w", err)
		}
		defer f.Close()

		return LoadTasksCSV(f)
	case ".json":
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read tasks file: %w", err)
		}

		return LoadTasksJSON(payload)
	case ".yaml", ".yml":
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read tasks file: %w", err)
		}

		return LoadTasksYAML(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadReportsFile reads progress reports from a file, choosing the decoder
// by extension (.csv, .json, .yaml, .yml).
func LoadReportsFile(path string) ([]Report, error) {
	switch ext(path) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open reports file: %w", err)
		}
		defer f.Close()

		return LoadReportsCSV(f)
	case ".json":
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read reports file: %w", err)
		}

		return LoadReportsJSON(payload)
	case ".yaml", ".yml":
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read reports file: %w", err)
		}

		return LoadReportsYAML(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
