// Package scanner implements the recursive directory tree scanner behind ptree.
//
// A scan walks a directory subtree depth-first and produces the fully rendered
// output lines for it. Three independent exclusion mechanisms apply: the ignore
// set removes entries entirely, the stop set lists directories without
// recursing into them, and the active gitignore ruleset prunes, stops, or dims
// matched entries depending on the configured policy. The active ruleset is
// threaded through the recursion as a parameter: a directory containing its own
// .gitignore file replaces the ruleset for exactly its subtree, and the
// caller's value is untouched on return.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/temirov/ptree/internal/styles"
	"github.com/temirov/ptree/internal/types"
)

const (
	// GitignoreFileName is the name of the per-directory gitignore file.
	GitignoreFileName = ".gitignore"

	directorySuffix     = "/"
	midListConnector    = "├── "
	terminalConnector   = "└── "
	midListChildPrefix  = "│   "
	terminalChildPrefix = "    "

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// warningGitignoreLoadFormat is used when a discovered .gitignore file cannot be parsed.
	warningGitignoreLoadFormat = "unable to load %s: %v"
)

// Options configures a Scanner. Nil collaborators are replaced with the
// operating-system backed defaults, and an empty policy with the default
// dim-and-stop policy.
type Options struct {
	IgnoreSet             PatternSet
	StopSet               PatternSet
	PrioritizeDirectories bool
	GitignorePolicy       types.GitignorePolicy
	Reader                DirectoryReader
	Rulesets              RulesetProvider
	Styler                styles.Styler
	Logger                *zap.Logger
}

// Scanner renders a directory subtree as indented tree lines.
type Scanner struct {
	ignoreSet             PatternSet
	stopSet               PatternSet
	prioritizeDirectories bool
	gitignorePolicy       types.GitignorePolicy
	reader                DirectoryReader
	rulesets              RulesetProvider
	styler                styles.Styler
	logger                *zap.Logger
}

// New constructs a Scanner from the provided options.
func New(options Options) *Scanner {
	if options.Reader == nil {
		options.Reader = FileSystemDirectoryReader{}
	}
	if options.Rulesets == nil {
		options.Rulesets = GitignoreRulesetProvider{}
	}
	if options.Styler == nil {
		options.Styler = styles.NewTerminalStyler()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.GitignorePolicy == "" {
		options.GitignorePolicy = types.GitignorePolicyDimAndStop
	}
	return &Scanner{
		ignoreSet:             options.IgnoreSet,
		stopSet:               options.StopSet,
		prioritizeDirectories: options.PrioritizeDirectories,
		gitignorePolicy:       options.GitignorePolicy,
		reader:                options.Reader,
		rulesets:              options.Rulesets,
		styler:                options.Styler,
		logger:                options.Logger,
	}
}

// Scan renders the subtree rooted at rootDirectoryPath and returns its ordered
// output lines. When drawConnectors is false the top-level listing is rendered
// without connector glyphs; nested listings always draw them. A directory that
// cannot be read aborts the whole scan.
func (scanner *Scanner) Scan(rootDirectoryPath string, drawConnectors bool) ([]string, error) {
	return scanner.scanDirectory(rootDirectoryPath, "", "", drawConnectors, nil, false)
}

// scanDirectory produces the rendered lines for one directory and, inline, all
// of its surviving descendants. relativeDirectoryPath is the directory's path
// relative to the scan root ("" for the root itself) and is the form exclusion
// patterns are matched against. activeRuleset and inheritedDim are threaded by
// value, which makes the gitignore scope rule and the dim propagation rule pure
// functions of call depth.
func (scanner *Scanner) scanDirectory(
	directoryPath string,
	relativeDirectoryPath string,
	linePrefix string,
	drawConnectors bool,
	activeRuleset Ruleset,
	inheritedDim bool,
) ([]string, error) {
	if scanner.gitignorePolicy.Enabled() {
		activeRuleset = scanner.rulesetForDirectory(directoryPath, activeRuleset)
	}

	directoryEntries, readDirectoryError := scanner.reader.ReadDirectory(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	survivingEntries := make([]DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if scanner.excludesEntry(directoryEntry, directoryPath, relativeDirectoryPath, activeRuleset) {
			continue
		}
		survivingEntries = append(survivingEntries, directoryEntry)
	}

	if scanner.prioritizeDirectories {
		sort.SliceStable(survivingEntries, func(firstIndex, secondIndex int) bool {
			return survivingEntries[firstIndex].IsDirectory && !survivingEntries[secondIndex].IsDirectory
		})
	}

	var renderedLines []string
	for entryIndex, directoryEntry := range survivingEntries {
		isLastEntry := entryIndex == len(survivingEntries)-1

		connector := ""
		if drawConnectors {
			connector = midListConnector
			if isLastEntry {
				connector = terminalConnector
			}
		}

		entryPath := filepath.Join(directoryPath, directoryEntry.Name)
		entryRelativePath := joinRelativePath(relativeDirectoryPath, directoryEntry.Name)

		entryMatchesGitignore := activeRuleset != nil &&
			activeRuleset.Ignored(entryPath, directoryEntry.IsDirectory)
		entryDimsSelf := entryMatchesGitignore && scanner.gitignorePolicy.Dims()

		renderedName := scanner.styler.Plain(displayName(directoryEntry.Name))
		if entryDimsSelf {
			renderedName = scanner.styler.Dimmed(displayName(directoryEntry.Name))
		}

		separator := ""
		if directoryEntry.IsDirectory {
			separator = directorySuffix
		}

		renderedLine := linePrefix + connector + renderedName + separator
		if inheritedDim {
			renderedLine = scanner.styler.Dimmed(renderedLine)
		}
		renderedLines = append(renderedLines, renderedLine)

		if !directoryEntry.IsDirectory {
			continue
		}
		if scanner.matchesPatternSet(scanner.stopSet, directoryEntry, entryRelativePath) {
			continue
		}
		if entryMatchesGitignore && scanner.gitignorePolicy.Stops() {
			continue
		}

		childLinePrefix := linePrefix + midListChildPrefix
		if isLastEntry {
			childLinePrefix = linePrefix + terminalChildPrefix
		}

		descendantLines, scanError := scanner.scanDirectory(
			entryPath,
			entryRelativePath,
			childLinePrefix,
			true,
			activeRuleset,
			inheritedDim || entryDimsSelf,
		)
		if scanError != nil {
			return nil, scanError
		}
		renderedLines = append(renderedLines, descendantLines...)
	}

	return renderedLines, nil
}

// rulesetForDirectory returns the ruleset parsed from directoryPath's own
// .gitignore file when one exists and parses, and the previously active
// ruleset otherwise. A nested .gitignore fully supersedes the inherited one
// rather than extending it.
func (scanner *Scanner) rulesetForDirectory(directoryPath string, activeRuleset Ruleset) Ruleset {
	gitignoreFilePath := filepath.Join(directoryPath, GitignoreFileName)
	fileInformation, statError := os.Stat(gitignoreFilePath)
	if statError != nil || fileInformation.IsDir() {
		return activeRuleset
	}
	loadedRuleset, loadError := scanner.rulesets.Load(gitignoreFilePath)
	if loadError != nil {
		scanner.logger.Warn(fmt.Sprintf(warningGitignoreLoadFormat, gitignoreFilePath, loadError))
		return activeRuleset
	}
	return loadedRuleset
}

// excludesEntry reports whether the entry is removed from the listing by the
// ignore set or, under the ignore policy, by the active gitignore ruleset. The
// ignore set is always evaluated first.
func (scanner *Scanner) excludesEntry(
	directoryEntry DirectoryEntry,
	directoryPath string,
	relativeDirectoryPath string,
	activeRuleset Ruleset,
) bool {
	entryRelativePath := joinRelativePath(relativeDirectoryPath, directoryEntry.Name)
	if scanner.matchesPatternSet(scanner.ignoreSet, directoryEntry, entryRelativePath) {
		return true
	}
	if scanner.gitignorePolicy.Prunes() && activeRuleset != nil {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name)
		if activeRuleset.Ignored(entryPath, directoryEntry.IsDirectory) {
			return true
		}
	}
	return false
}

// matchesPatternSet applies the three-way pattern match. Entries whose names
// are not representable as text are skipped from comparisons entirely.
func (scanner *Scanner) matchesPatternSet(
	patternSet PatternSet,
	directoryEntry DirectoryEntry,
	entryRelativePath string,
) bool {
	if !utf8.ValidString(directoryEntry.Name) {
		return false
	}
	return patternSet.Matches(entryRelativePath)
}

// displayName degrades a name that cannot be represented as text to the empty
// string instead of failing the scan.
func displayName(entryName string) string {
	if !utf8.ValidString(entryName) {
		return ""
	}
	return entryName
}

// joinRelativePath extends a root-relative directory path with one child name.
func joinRelativePath(relativeDirectoryPath string, entryName string) string {
	if relativeDirectoryPath == "" {
		return entryName
	}
	return relativeDirectoryPath + "/" + entryName
}
