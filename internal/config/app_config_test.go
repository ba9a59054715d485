package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const (
	globalConfigurationContent = "gitignore: \"off\"\nclipboard: false\nignore:\n  - global.txt\n"
	localConfigurationContent  = "gitignore: dim\nignore:\n  - local.txt\n"
)

// TestLoadApplicationConfigurationLocalOverridesGlobal verifies that the local
// configuration file overlays the global one: scalar values from the local file
// win and pattern lists are concatenated.
func TestLoadApplicationConfigurationLocalOverridesGlobal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	globalConfigDirectory := filepath.Join(homeDirectory, GlobalConfigDirectoryName)
	if makeDirectoryError := os.MkdirAll(globalConfigDirectory, 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("failed to create global config directory: %v", makeDirectoryError)
	}
	writeTestFile(testingHandle, filepath.Join(globalConfigDirectory, GlobalConfigFileName), globalConfigurationContent)

	workingDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(workingDirectory, LocalConfigFileName), localConfigurationContent)

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration failed: %v", loadError)
	}

	if configuration.Gitignore != "dim" {
		testingHandle.Fatalf("expected local gitignore value to win, got %q", configuration.Gitignore)
	}
	if configuration.Clipboard == nil || *configuration.Clipboard {
		testingHandle.Fatalf("expected global clipboard value to survive, got %v", configuration.Clipboard)
	}
	expectedIgnore := []string{"global.txt", "local.txt"}
	if !reflect.DeepEqual(configuration.Ignore, expectedIgnore) {
		testingHandle.Fatalf("unexpected ignore patterns: got %v want %v", configuration.Ignore, expectedIgnore)
	}
}

// TestLoadApplicationConfigurationMissingFiles verifies that absent
// configuration files yield an empty configuration rather than an error.
func TestLoadApplicationConfigurationMissingFiles(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration failed: %v", loadError)
	}
	if !reflect.DeepEqual(configuration, ApplicationConfiguration{Ignore: []string{}, Stop: []string{}}) {
		testingHandle.Fatalf("expected empty configuration, got %+v", configuration)
	}
}

// TestLoadApplicationConfigurationExplicitFile verifies that an explicitly
// provided configuration path is honored.
func TestLoadApplicationConfigurationExplicitFile(testingHandle *testing.T) {
	testingHandle.Setenv("HOME", testingHandle.TempDir())
	workingDirectory := testingHandle.TempDir()
	explicitFileName := "custom.yaml"
	writeTestFile(testingHandle, filepath.Join(workingDirectory, explicitFileName), "dirs: true\noutput: tree.txt\n")

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitFileName,
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration failed: %v", loadError)
	}
	if configuration.PrioritizeDirectories == nil || !*configuration.PrioritizeDirectories {
		testingHandle.Fatalf("expected dirs to be enabled, got %v", configuration.PrioritizeDirectories)
	}
	if configuration.Output != "tree.txt" {
		testingHandle.Fatalf("unexpected output path: %q", configuration.Output)
	}
}

// TestApplicationConfigurationMerge verifies the field-by-field overlay rules.
func TestApplicationConfigurationMerge(testingHandle *testing.T) {
	baseClipboard := true
	base := ApplicationConfiguration{
		Ignore:    []string{"one"},
		Gitignore: "stop",
		Clipboard: &baseClipboard,
		Output:    "base.txt",
	}
	overrideRoot := true
	override := ApplicationConfiguration{
		Ignore:      []string{"two", "one"},
		IncludeRoot: &overrideRoot,
	}

	merged := base.Merge(override)

	expectedIgnore := []string{"one", "two"}
	if !reflect.DeepEqual(merged.Ignore, expectedIgnore) {
		testingHandle.Fatalf("unexpected merged ignore patterns: got %v want %v", merged.Ignore, expectedIgnore)
	}
	if merged.Gitignore != "stop" {
		testingHandle.Fatalf("expected base gitignore value to survive, got %q", merged.Gitignore)
	}
	if merged.IncludeRoot == nil || !*merged.IncludeRoot {
		testingHandle.Fatalf("expected override root value, got %v", merged.IncludeRoot)
	}
	if merged.Clipboard == nil || !*merged.Clipboard {
		testingHandle.Fatalf("expected base clipboard value to survive, got %v", merged.Clipboard)
	}
	if merged.Output != "base.txt" {
		testingHandle.Fatalf("expected base output value to survive, got %q", merged.Output)
	}
}
