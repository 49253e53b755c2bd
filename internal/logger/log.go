// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Shared logger used by all tools in this module.

package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. One of the Init functions must be
// called before use.
var Log *logrus.Logger

const defaultLogLevel = logrus.InfoLevel

// DefaultLogLevelName is the name of the log level used when none is given.
const DefaultLogLevelName = "info"

// Levels returns the names of the supported log levels, in increasing order
// of verbosity.
func Levels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}

	return levels
}

// InitStderrLog initializes the logger to print to stderr only, at the
// default level.
func InitStderrLog() {
	Log = logrus.New()
	Log.SetOutput(os.Stderr)
	Log.SetLevel(defaultLogLevel)
}

// InitBestEffort initializes the logger from the given log file path and
// level name. Invalid input degrades to defaults with a warning instead of
// failing: tools should not die because their diagnostics were misconfigured.
func InitBestEffort(logFilePath, levelName string) {
	Log = logrus.New()
	Log.SetOutput(os.Stderr)

	level := defaultLogLevel
	parsedLevel, levelErr := logrus.ParseLevel(levelName)
	if levelName != "" && levelErr == nil {
		level = parsedLevel
	}
	Log.SetLevel(level)

	if logFilePath != "" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			Log.Warnf("Failed to open log file '%s': %v", logFilePath, err)
		} else {
			Log.SetOutput(io.MultiWriter(os.Stderr, logFile))
		}
	}

	if levelName != "" && levelErr != nil {
		Log.Warnf("Unknown log level '%s', defaulting to '%s'", levelName, DefaultLogLevelName)
	}
}

// PanicOnError logs the formatted arguments (if any) and panics when err is
// not nil.
func PanicOnError(err interface{}, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			format := args[0].(string)
			Log.Errorf(format, args[1:]...)
		}

		Log.Panic(err)
	}
}
