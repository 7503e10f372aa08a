package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters project roots by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the paths whose base name matches pattern.
// Supports patterns like "web-*" or "*admin*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, p := range paths {
		if matchName(filepath.Base(p), pattern) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*Payment*" style: every literal part must occur, and there must be one
	parts := strings.Split(pattern, "*")
	hasLiteral := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		hasLiteral = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasLiteral
}
