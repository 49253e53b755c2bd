// Copyright Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/dynpart/superimg/tools/internal/logger"
)

// rootCmd represents the base command when called without any subcommands
var (
	verbose bool
	quiet   bool

	RootCmd = &cobra.Command{
		Use:   "superctl",
		Short: "Super-image layout tool",
		Long:  `Inspection tool for super-image partition layout files`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	// Define flags and configuration settings.
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only enable minimal output")
}

func initLogging() {
	w := os.Stderr

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else if quiet {
		logLevel = slog.LevelWarn
	} else {
		logLevel = slog.LevelInfo
	}

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))

	// Also initialize the logrus logger
	logger.InitStderrLog()
}
