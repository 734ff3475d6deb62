package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_DEBUG = "DEBUG"
	LOG_LEVEL_INFO  = "INFO"
	LOG_LEVEL_WARN  = "WARN"
	LOG_LEVEL_ERROR = "ERROR"
	LOG_LEVEL_FATAL = "FATAL"
	LOG_LEVEL_PANIC = "PANIC"

	LogLevelEnv = "ABSA_LOGLEVEL"
)

var levels = map[string]zerolog.Level{
	LOG_LEVEL_DEBUG: zerolog.DebugLevel,
	LOG_LEVEL_INFO:  zerolog.InfoLevel,
	LOG_LEVEL_WARN:  zerolog.WarnLevel,
	LOG_LEVEL_ERROR: zerolog.ErrorLevel,
	LOG_LEVEL_FATAL: zerolog.FatalLevel,
	LOG_LEVEL_PANIC: zerolog.PanicLevel,
}

var output io.Writer = os.Stderr

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// SetOutput changes the writer of loggers created afterwards.
func SetOutput(w io.Writer) {
	output = w
}

func ParseLevel(level string) zerolog.Level {
	if value, ok := levels[strings.ToUpper(strings.TrimSpace(level))]; ok {
		return value
	}
	return zerolog.InfoLevel
}

func NewLogger(component string) zerolog.Logger {
	level, ok := os.LookupEnv(LogLevelEnv)
	if !ok {
		level = LOG_LEVEL_INFO
	}

	return zerolog.New(output).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(ParseLevel(level))
}
