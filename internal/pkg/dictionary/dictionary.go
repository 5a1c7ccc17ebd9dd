// Package dictionary loads pattern dictionaries for the scan command.
// Two formats are supported: plain text lists (one pattern per line, '#'
// comments) and YAML files with per-pattern metadata.
package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML structure of a pattern dictionary.
type File struct {
	Patterns []Entry `yaml:"patterns"`
}

// Entry is a single pattern in a YAML dictionary.
type Entry struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

// Load reads a pattern dictionary from path. Files ending in .yaml or .yml
// are parsed as YAML, everything else as a plain text list. Patterns are
// returned in file order.
func Load(path string) ([]string, error) {
	// #nosec G304 -- Path comes from a CLI flag, not untrusted input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parsePlain(data), nil
	}
}

func parseYAML(data []byte) ([]string, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern YAML: %w", err)
	}

	patterns := make([]string, 0, len(file.Patterns))
	for i, entry := range file.Patterns {
		if entry.Pattern == "" {
			return nil, fmt.Errorf("pattern %d is empty", i)
		}
		patterns = append(patterns, entry.Pattern)
	}
	return patterns, nil
}

// parsePlain reads one pattern per line. Blank lines and lines starting
// with '#' are skipped; other whitespace is preserved since patterns may
// legitimately contain it.
func parsePlain(data []byte) []string {
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
