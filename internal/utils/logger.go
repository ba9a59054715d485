package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// applicationLoggerName labels every record emitted by the ptree logger.
const applicationLoggerName = "ptree"

// NewApplicationLogger constructs the named zap logger ptree uses for its
// console notices and warnings.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	loggerInstance, buildError := config.Build()
	if buildError != nil {
		return nil, buildError
	}
	return loggerInstance.Named(applicationLoggerName), nil
}
