package scanner

import (
	"path"
	"strings"
)

const currentDirectoryPrefix = "./"

// PatternSet holds exclusion path patterns exactly as configured. A pattern may
// be written root-relative ("src/main.rs"), root-relative with a leading "./"
// ("./src/main.rs"), or as a bare filename ("main.rs").
type PatternSet map[string]struct{}

// NewPatternSet builds a PatternSet from the provided patterns, skipping blank entries.
func NewPatternSet(patterns []string) PatternSet {
	patternSet := make(PatternSet, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		patternSet[trimmedPattern] = struct{}{}
	}
	return patternSet
}

// Matches reports whether a discovered root-relative path matches the set under
// any of the three configured forms: the path itself, the path written with a
// leading "./", or the bare final component.
func (patternSet PatternSet) Matches(relativePath string) bool {
	if len(patternSet) == 0 {
		return false
	}
	if _, found := patternSet[relativePath]; found {
		return true
	}
	if _, found := patternSet[currentDirectoryPrefix+relativePath]; found {
		return true
	}
	if _, found := patternSet[path.Base(relativePath)]; found {
		return true
	}
	return false
}
