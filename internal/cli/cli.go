// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/ptree/internal/config"
	"github.com/temirov/ptree/internal/output"
	"github.com/temirov/ptree/internal/scanner"
	"github.com/temirov/ptree/internal/services/clipboard"
	"github.com/temirov/ptree/internal/types"
	"github.com/temirov/ptree/internal/utils"
)

const (
	rootUse              = "ptree"
	rootShortDescription = "render a project directory tree"
	rootLongDescription  = `ptree renders the working directory as an indented tree.
Entries can be hidden outright, listed without recursing into them, and styled
or pruned according to the project's .gitignore files. The rendered tree is
printed to stdout and copied to the clipboard unless suppressed.`
	rootUsageExample = `  # Render the current project, directories first
  ptree --dirs

  # Hide build output and stop at the vendor directory
  ptree -i dist -s vendor

  # Prune everything the project's .gitignore files match
  ptree --gitignore ignore`

	ignoreFlagName      = "ignore"
	ignoreFlagShorthand = "i"
	stopFlagName        = "stop"
	stopFlagShorthand   = "s"
	outputFlagName      = "output"
	outputFlagShorthand = "o"
	gitFlagName         = "git"
	vscodeFlagName      = "vscode"
	nodeModulesFlagName = "node-modules"
	targetFlagName      = "target"
	noClipFlagName      = "noclip"
	rootFlagName        = "root"
	rootFlagShorthand   = "r"
	dirsFlagName        = "dirs"
	dirsFlagShorthand   = "d"
	gitignoreFlagName   = "gitignore"
	configFlagName      = "config"
	versionFlagName     = "version"

	ignoreFlagDescription      = "path pattern to hide from the tree"
	stopFlagDescription        = "directory pattern to list without recursing into"
	outputFlagDescription      = "also write the rendered tree to a file"
	gitFlagDescription         = "show the .git directory"
	vscodeFlagDescription      = "show the .vscode directory"
	nodeModulesFlagDescription = "recurse into node_modules"
	targetFlagDescription      = "recurse into target in Rust projects"
	noClipFlagDescription      = "do not copy the tree to the clipboard"
	rootFlagDescription        = "include the root directory name and draw top-level lines"
	dirsFlagDescription        = "list directories before files"
	gitignoreFlagDescription   = "gitignore mode: " + types.AcceptedGitignorePolicyValues
	configFlagDescription      = "configuration file path"
	versionFlagDescription     = "display application version"

	versionTemplate             = "ptree version: %s\n"
	usingGitignoreMessage       = "using .gitignore"
	warningClipboardFormat      = "unable to copy to clipboard: %v"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// treeOptions stores the command line configuration for a single render.
type treeOptions struct {
	ignorePatterns        []string
	stopPatterns          []string
	outputFilePath        string
	showGit               bool
	showVSCode            bool
	showNodeModules       bool
	recurseCargoTarget    bool
	skipClipboard         bool
	includeRoot           bool
	prioritizeDirectories bool
	gitignoreMode         string
	configFilePath        string
}

// Execute runs the ptree application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var options treeOptions
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runTree(command, &options)
		},
	}

	commandFlags := rootCommand.Flags()
	commandFlags.StringArrayVarP(&options.ignorePatterns, ignoreFlagName, ignoreFlagShorthand, nil, ignoreFlagDescription)
	commandFlags.StringArrayVarP(&options.stopPatterns, stopFlagName, stopFlagShorthand, nil, stopFlagDescription)
	commandFlags.StringVarP(&options.outputFilePath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	commandFlags.StringVar(&options.gitignoreMode, gitignoreFlagName, "", gitignoreFlagDescription)
	commandFlags.StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(commandFlags, &options.showGit, gitFlagName, "", false, gitFlagDescription)
	registerBooleanFlag(commandFlags, &options.showVSCode, vscodeFlagName, "", false, vscodeFlagDescription)
	registerBooleanFlag(commandFlags, &options.showNodeModules, nodeModulesFlagName, "", false, nodeModulesFlagDescription)
	registerBooleanFlag(commandFlags, &options.recurseCargoTarget, targetFlagName, "", false, targetFlagDescription)
	registerBooleanFlag(commandFlags, &options.skipClipboard, noClipFlagName, "", false, noClipFlagDescription)
	registerBooleanFlag(commandFlags, &options.includeRoot, rootFlagName, rootFlagShorthand, false, rootFlagDescription)
	registerBooleanFlag(commandFlags, &options.prioritizeDirectories, dirsFlagName, dirsFlagShorthand, false, dirsFlagDescription)
	commandFlags.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	return rootCommand
}

// runTree renders the working directory tree using the effective configuration
// and delivers it to stdout, the clipboard, and the optional output file.
func runTree(command *cobra.Command, options *treeOptions) error {
	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() { _ = loggerInstance.Sync() }()

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}
	applyConfigurationDefaults(command, options, applicationConfiguration)

	gitignorePolicy, policyError := types.ParseGitignorePolicy(options.gitignoreMode)
	if policyError != nil {
		return policyError
	}

	ignorePatterns := config.ResolveIgnorePatterns(config.DefaultExclusions{
		ShowGit:    options.showGit,
		ShowVSCode: options.showVSCode,
	}, options.ignorePatterns)
	stopPatterns := config.ResolveStopPatterns(config.DefaultExclusions{
		ShowNodeModules:    options.showNodeModules,
		RecurseCargoTarget: options.recurseCargoTarget,
	}, workingDirectory, options.stopPatterns)

	if gitignorePolicy.Enabled() && fileExists(filepath.Join(workingDirectory, scanner.GitignoreFileName)) {
		loggerInstance.Info(usingGitignoreMessage)
	}

	treeScanner := scanner.New(scanner.Options{
		IgnoreSet:             scanner.NewPatternSet(ignorePatterns),
		StopSet:               scanner.NewPatternSet(stopPatterns),
		PrioritizeDirectories: options.prioritizeDirectories,
		GitignorePolicy:       gitignorePolicy,
		Logger:                loggerInstance,
	})

	renderedLines, scanError := treeScanner.Scan(workingDirectory, options.includeRoot)
	if scanError != nil {
		return scanError
	}

	rootLabel := utils.EmptyString
	if options.includeRoot {
		rootLabel = filepath.Base(workingDirectory)
	}
	document := output.AssembleDocument(renderedLines, rootLabel)

	fmt.Fprintln(command.OutOrStdout(), document)

	if options.outputFilePath != "" {
		if writeError := output.WriteDocumentFile(options.outputFilePath, document); writeError != nil {
			return writeError
		}
	}

	if !options.skipClipboard {
		if copyError := clipboard.NewService().Copy(document); copyError != nil {
			loggerInstance.Warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
	}

	return nil
}

// applyConfigurationDefaults overlays configuration file values onto options
// the user did not set explicitly on the command line. Pattern lists from the
// configuration are always prepended to the command line patterns.
func applyConfigurationDefaults(command *cobra.Command, options *treeOptions, configuration config.ApplicationConfiguration) {
	commandFlags := command.Flags()
	if !commandFlags.Changed(gitignoreFlagName) && configuration.Gitignore != "" {
		options.gitignoreMode = configuration.Gitignore
	}
	if !commandFlags.Changed(dirsFlagName) && configuration.PrioritizeDirectories != nil {
		options.prioritizeDirectories = *configuration.PrioritizeDirectories
	}
	if !commandFlags.Changed(rootFlagName) && configuration.IncludeRoot != nil {
		options.includeRoot = *configuration.IncludeRoot
	}
	if !commandFlags.Changed(noClipFlagName) && configuration.Clipboard != nil {
		options.skipClipboard = !*configuration.Clipboard
	}
	if !commandFlags.Changed(outputFlagName) && configuration.Output != "" {
		options.outputFilePath = configuration.Output
	}
	if len(configuration.Ignore) > 0 {
		options.ignorePatterns = utils.DeduplicatePatterns(append(append([]string{}, configuration.Ignore...), options.ignorePatterns...))
	}
	if len(configuration.Stop) > 0 {
		options.stopPatterns = utils.DeduplicatePatterns(append(append([]string{}, configuration.Stop...), options.stopPatterns...))
	}
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && !fileInformation.IsDir()
}
