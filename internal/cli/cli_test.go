package cli

import (
	"reflect"
	"testing"

	"github.com/temirov/ptree/internal/config"
)

// TestNormalizeBooleanFlagArguments verifies that bare literals following
// boolean flags are rewritten into the equals form while everything else is
// left untouched.
func TestNormalizeBooleanFlagArguments(testingHandle *testing.T) {
	testCases := []struct {
		name              string
		arguments         []string
		expectedArguments []string
	}{
		{
			name:              "bare literal is attached",
			arguments:         []string{"--dirs", "yes"},
			expectedArguments: []string{"--dirs=yes"},
		},
		{
			name:              "off literal is attached",
			arguments:         []string{"--noclip", "off", "-i", "dist"},
			expectedArguments: []string{"--noclip=off", "-i", "dist"},
		},
		{
			name:              "non literal value stays separate",
			arguments:         []string{"--root", "extra"},
			expectedArguments: []string{"--root", "extra"},
		},
		{
			name:              "string flag value is untouched",
			arguments:         []string{"--gitignore", "off"},
			expectedArguments: []string{"--gitignore", "off"},
		},
		{
			name:              "double dash terminates rewriting",
			arguments:         []string{"--", "--dirs", "yes"},
			expectedArguments: []string{"--", "--dirs", "yes"},
		},
		{
			name:              "empty arguments",
			arguments:         nil,
			expectedArguments: nil,
		},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			rootCommand := createRootCommand()
			normalizedArguments := normalizeBooleanFlagArguments(rootCommand, testCase.arguments)
			if !reflect.DeepEqual(normalizedArguments, testCase.expectedArguments) {
				subtestHandle.Fatalf("normalized %v to %v, want %v", testCase.arguments, normalizedArguments, testCase.expectedArguments)
			}
		})
	}
}

// TestBooleanFlagValueParsesLenientLiterals verifies the accepted literal set
// and rejection of anything else.
func TestBooleanFlagValueParsesLenientLiterals(testingHandle *testing.T) {
	var target bool
	flagValue := &booleanFlagValue{target: &target, flagKey: "dirs"}

	acceptedLiterals := map[string]bool{
		"true": true, "YES": true, "On": true, "1": true, " y ": true, "": true,
		"false": false, "no": false, "off": false, "0": false, "n": false,
	}
	for literal, expectedValue := range acceptedLiterals {
		if setError := flagValue.Set(literal); setError != nil {
			testingHandle.Fatalf("Set(%q) failed: %v", literal, setError)
		}
		if target != expectedValue {
			testingHandle.Fatalf("Set(%q) stored %v, want %v", literal, target, expectedValue)
		}
	}

	if setError := flagValue.Set("maybe"); setError == nil {
		testingHandle.Fatalf("expected %q to be rejected", "maybe")
	}
}

// TestApplyConfigurationDefaults verifies that configuration values fill in
// only the options the user did not set on the command line, and that
// configuration patterns are prepended to command line patterns.
func TestApplyConfigurationDefaults(testingHandle *testing.T) {
	rootCommand := createRootCommand()
	if parseError := rootCommand.ParseFlags([]string{"--gitignore", "stop", "-i", "dist"}); parseError != nil {
		testingHandle.Fatalf("flag parsing failed: %v", parseError)
	}

	options := treeOptions{
		gitignoreMode:  "stop",
		ignorePatterns: []string{"dist"},
	}
	configuredDirs := true
	configuredClipboard := false
	configuration := config.ApplicationConfiguration{
		Ignore:                []string{"coverage", "dist"},
		Stop:                  []string{"vendor"},
		Gitignore:             "dim",
		PrioritizeDirectories: &configuredDirs,
		Clipboard:             &configuredClipboard,
		Output:                "tree.txt",
	}

	applyConfigurationDefaults(rootCommand, &options, configuration)

	if options.gitignoreMode != "stop" {
		testingHandle.Fatalf("expected explicit gitignore mode to survive, got %q", options.gitignoreMode)
	}
	if !options.prioritizeDirectories {
		testingHandle.Fatalf("expected configured dirs default to apply")
	}
	if !options.skipClipboard {
		testingHandle.Fatalf("expected clipboard: false to suppress copying")
	}
	if options.outputFilePath != "tree.txt" {
		testingHandle.Fatalf("unexpected output path %q", options.outputFilePath)
	}
	expectedIgnorePatterns := []string{"coverage", "dist"}
	if !reflect.DeepEqual(options.ignorePatterns, expectedIgnorePatterns) {
		testingHandle.Fatalf("unexpected ignore patterns: got %v want %v", options.ignorePatterns, expectedIgnorePatterns)
	}
	expectedStopPatterns := []string{"vendor"}
	if !reflect.DeepEqual(options.stopPatterns, expectedStopPatterns) {
		testingHandle.Fatalf("unexpected stop patterns: got %v want %v", options.stopPatterns, expectedStopPatterns)
	}
}

// TestApplyConfigurationDefaultsWithoutFlagChanges verifies that all
// configuration values apply when the command line set nothing.
func TestApplyConfigurationDefaultsWithoutFlagChanges(testingHandle *testing.T) {
	rootCommand := createRootCommand()
	if parseError := rootCommand.ParseFlags(nil); parseError != nil {
		testingHandle.Fatalf("flag parsing failed: %v", parseError)
	}

	var options treeOptions
	configuredRoot := true
	configuration := config.ApplicationConfiguration{
		Gitignore:   "ignore",
		IncludeRoot: &configuredRoot,
	}

	applyConfigurationDefaults(rootCommand, &options, configuration)

	if options.gitignoreMode != "ignore" {
		testingHandle.Fatalf("expected configured gitignore mode, got %q", options.gitignoreMode)
	}
	if !options.includeRoot {
		testingHandle.Fatalf("expected configured root default to apply")
	}
	if options.skipClipboard {
		testingHandle.Fatalf("expected clipboard to stay enabled by default")
	}
}
