// Package config resolves ptree's effective configuration from conventional
// defaults, configuration files, and command line input.
package config

import (
	"os"
	"path/filepath"

	"github.com/temirov/ptree/internal/utils"
)

const (
	// VSCodeDirectoryName is the editor settings directory ignored by default.
	VSCodeDirectoryName = ".vscode"
	// NodeModulesDirectoryName is the dependency directory stopped by default.
	NodeModulesDirectoryName = "node_modules"
	// CargoManifestFileName marks the scan root as a Rust project.
	CargoManifestFileName = "Cargo.toml"
	// CargoTargetDirectoryName is the Rust build directory stopped by default in Rust projects.
	CargoTargetDirectoryName = "target"
)

// DefaultExclusions controls which conventional entries keep their default treatment.
type DefaultExclusions struct {
	ShowGit            bool
	ShowVSCode         bool
	ShowNodeModules    bool
	RecurseCargoTarget bool
}

// ResolveIgnorePatterns returns the effective ignore patterns: the conventional
// tool directories unless explicitly shown, followed by the user patterns.
func ResolveIgnorePatterns(exclusions DefaultExclusions, userPatterns []string) []string {
	var patterns []string
	if !exclusions.ShowGit {
		patterns = append(patterns, utils.GitDirectoryName)
	}
	if !exclusions.ShowVSCode {
		patterns = append(patterns, VSCodeDirectoryName)
	}
	patterns = append(patterns, userPatterns...)
	return utils.DeduplicatePatterns(patterns)
}

// ResolveStopPatterns returns the effective stop patterns. The target directory
// of a Rust project (a Cargo.toml sits in the scan root) is stopped unless
// recursion into it was requested.
func ResolveStopPatterns(exclusions DefaultExclusions, rootDirectoryPath string, userPatterns []string) []string {
	var patterns []string
	if !exclusions.ShowNodeModules {
		patterns = append(patterns, NodeModulesDirectoryName)
	}
	if !exclusions.RecurseCargoTarget && hasCargoManifest(rootDirectoryPath) {
		patterns = append(patterns, CargoTargetDirectoryName)
	}
	patterns = append(patterns, userPatterns...)
	return utils.DeduplicatePatterns(patterns)
}

// hasCargoManifest reports whether the scan root contains a Cargo.toml file.
func hasCargoManifest(rootDirectoryPath string) bool {
	fileInformation, statError := os.Stat(filepath.Join(rootDirectoryPath, CargoManifestFileName))
	return statError == nil && !fileInformation.IsDir()
}
