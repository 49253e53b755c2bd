// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// A tool for re-emitting partition layout files as normalized JSON

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dynpart/superimg/tools/imagegen/configuration"
	"github.com/dynpart/superimg/tools/internal/exe"
	"github.com/dynpart/superimg/tools/internal/jsonutils"
	"github.com/dynpart/superimg/tools/internal/logger"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("confdump", "Dumps a partition layout file as normalized JSON.")

	logFile  = exe.LogFileFlag(app)
	logLevel = exe.LogLevelFlag(app)

	configFile = app.Flag("config", "Path to the partition layout file.").Required().ExistingFile()
	outFile    = app.Flag("output", "Output file path. Prints to stdout if not given.").String()
)

func main() {
	app.Version(exe.ToolkitVersion)
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logger.InitBestEffort(*logFile, *logLevel)

	config, err := configuration.Load(*configFile)
	if err != nil {
		logger.Log.Panicf("Failed loading partition layout. Error: %s", err)
	}

	logger.Log.Debugf("Loaded layout with %d block device(s), %d group(s), %d partition(s)",
		len(config.BlockDevices), len(config.Groups), len(config.Partitions))

	if *outFile != "" {
		err = jsonutils.WriteJSONFile(*outFile, &config)
		logger.PanicOnError(err, "Failed writing normalized layout. Error: %v", err)
		return
	}

	content, err := json.MarshalIndent(&config, "", "    ")
	logger.PanicOnError(err, "Failed marshaling normalized layout. Error: %v", err)

	fmt.Println(string(content))
}
