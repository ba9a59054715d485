package scanner

import (
	gitignore "github.com/monochromegane/go-gitignore"
)

// Ruleset answers whether a path, known to be a file or a directory, matches
// any rule of a parsed .gitignore file.
type Ruleset interface {
	Ignored(path string, isDirectory bool) bool
}

// RulesetProvider parses a .gitignore file into a Ruleset.
type RulesetProvider interface {
	Load(gitignoreFilePath string) (Ruleset, error)
}

// GitignoreRulesetProvider loads rulesets using github.com/monochromegane/go-gitignore.
// A loaded matcher is anchored at the directory containing the .gitignore file,
// so rule evaluation is scoped to that directory's subtree.
type GitignoreRulesetProvider struct{}

// Load parses the .gitignore file at gitignoreFilePath.
func (GitignoreRulesetProvider) Load(gitignoreFilePath string) (Ruleset, error) {
	ignoreMatcher, parseError := gitignore.NewGitIgnore(gitignoreFilePath)
	if parseError != nil {
		return nil, parseError
	}
	return gitignoreRuleset{matcher: ignoreMatcher}, nil
}

type gitignoreRuleset struct {
	matcher gitignore.IgnoreMatcher
}

func (ruleset gitignoreRuleset) Ignored(path string, isDirectory bool) bool {
	return ruleset.matcher.Match(path, isDirectory)
}

var _ RulesetProvider = GitignoreRulesetProvider{}
