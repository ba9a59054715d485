package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage reports that the application terminated with an error.
const ApplicationExecutionFailedMessage = "application execution failed"
