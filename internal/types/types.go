// Package types defines cross-package data structures and constants used by the ptree CLI.
package types

import (
	"fmt"
	"strings"
)

// GitignorePolicy selects how entries matching the active gitignore ruleset are treated.
type GitignorePolicy string

const (
	// GitignorePolicyOff disables gitignore matching entirely.
	GitignorePolicyOff GitignorePolicy = "off"
	// GitignorePolicyIgnore removes matched entries from the listing.
	GitignorePolicyIgnore GitignorePolicy = "ignore"
	// GitignorePolicyStop lists matched directories without recursing into them.
	GitignorePolicyStop GitignorePolicy = "stop"
	// GitignorePolicyDim renders matched entries in a de-emphasized style.
	GitignorePolicyDim GitignorePolicy = "dim"
	// GitignorePolicyDimAndStop combines GitignorePolicyDim and GitignorePolicyStop.
	GitignorePolicyDimAndStop GitignorePolicy = "dim-stop"

	// AcceptedGitignorePolicyValues lists the recognized gitignore mode literals.
	AcceptedGitignorePolicyValues = "off, ignore, stop, dim, dim-stop"

	invalidGitignorePolicyFormat = "invalid gitignore mode '%s'; accepted values: %s"
)

// Enabled reports whether gitignore matching participates in the scan at all.
func (policy GitignorePolicy) Enabled() bool {
	return policy != GitignorePolicyOff
}

// Prunes reports whether matched entries are removed from the listing.
func (policy GitignorePolicy) Prunes() bool {
	return policy == GitignorePolicyIgnore
}

// Stops reports whether matched directories are listed without recursion.
func (policy GitignorePolicy) Stops() bool {
	return policy == GitignorePolicyStop || policy == GitignorePolicyDimAndStop
}

// Dims reports whether matched entries are rendered in a de-emphasized style.
func (policy GitignorePolicy) Dims() bool {
	return policy == GitignorePolicyDim || policy == GitignorePolicyDimAndStop
}

// ParseGitignorePolicy converts a configuration or flag value into a GitignorePolicy.
// An empty value selects the default GitignorePolicyDimAndStop.
func ParseGitignorePolicy(value string) (GitignorePolicy, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	switch GitignorePolicy(normalizedValue) {
	case GitignorePolicy(""):
		return GitignorePolicyDimAndStop, nil
	case GitignorePolicyOff, GitignorePolicyIgnore, GitignorePolicyStop, GitignorePolicyDim, GitignorePolicyDimAndStop:
		return GitignorePolicy(normalizedValue), nil
	}
	return GitignorePolicy(""), fmt.Errorf(invalidGitignorePolicyFormat, value, AcceptedGitignorePolicyValues)
}
