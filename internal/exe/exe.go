// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Shared flag definitions for the module's kingpin-based tools.

package exe

import (
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dynpart/superimg/tools/internal/logger"
)

// ToolkitVersion is set at link time by the build.
var ToolkitVersion = ""

// LogFileFlag registers the standard log file flag on an application.
func LogFileFlag(k *kingpin.Application) *string {
	return k.Flag("log-file", "Path to the file where the log will be saved.").String()
}

// LogLevelFlag registers the standard log level flag on an application.
func LogLevelFlag(k *kingpin.Application) *string {
	return k.Flag("log-level", fmt.Sprintf("Minimum log level to print. One of: (%s).", strings.Join(logger.Levels(), ", "))).Default(logger.DefaultLogLevelName).String()
}
