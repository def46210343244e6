package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Instance *zap.SugaredLogger
var Level zap.AtomicLevel

const defaultLevel = zap.InfoLevel

func init() {
	Level = zap.NewAtomicLevelAt(parseLevel(os.Getenv("LOG_LEVEL")))

	// stdout belongs to generated output (`generate -` and friends)
	Instance = zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				LevelKey:       "level",
				NameKey:        "Instance",
				CallerKey:      "caller",
				MessageKey:     "message",
				StacktraceKey:  "stacktrace",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeLevel:    zapcore.LowercaseLevelEncoder,
				EncodeTime:     zapcore.ISO8601TimeEncoder,
				EncodeDuration: zapcore.SecondsDurationEncoder,
				EncodeCaller:   zapcore.ShortCallerEncoder,
			}),
			zapcore.AddSync(os.Stderr),
			Level,
		),
	).Sugar().Named("patgen")
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return defaultLevel
	}
}

// SetLevel changes the level of Instance and every logger derived from it.
func SetLevel(s string) {
	Level.SetLevel(parseLevel(s))
}

func Debugf(template string, args ...interface{}) {
	Instance.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	Instance.Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	Instance.Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	Instance.Errorf(template, args...)
}
