// Copyright Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dynpart/superimg/tools/imagegen/configuration"
)

var describeConfigFile string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Summarize a partition layout file",
	RunE: func(c *cobra.Command, args []string) error {
		return describeLayout(describeConfigFile)
	},
	SilenceUsage: true,
	Example: `  Summarize a layout file:
    superctl describe --config partition_config.json
`,
}

func describeLayout(configPath string) error {
	slog.Debug("Loading layout", "path", configPath)

	config, err := configuration.Load(configPath)
	if err != nil {
		return err
	}

	color.Set(color.Underline, color.Italic)
	fmt.Fprintf(os.Stderr, "Layout: %s\n", configPath)
	color.Unset()

	fmt.Printf("Super image: %s (size: %s)\n", config.SuperMeta.Path, config.SuperMeta.Size)
	fmt.Printf("NV: id=%s text=%s\n", config.NvID, config.NvText)

	heading := color.New(color.Bold)

	heading.Printf("Block devices (%d):\n", len(config.BlockDevices))
	for _, device := range config.BlockDevices {
		fmt.Printf("  %s: size=%s block_size=%s alignment=%s\n", device.Name, device.Size, device.BlockSize, device.Alignment)
	}

	heading.Printf("Groups (%d):\n", len(config.Groups))
	for _, group := range config.Groups {
		if group.MaximumSize != "" {
			fmt.Printf("  %s: maximum_size=%s\n", group.Name, group.MaximumSize)
		} else {
			fmt.Printf("  %s: (no maximum size)\n", group.Name)
		}
	}

	heading.Printf("Partitions (%d):\n", len(config.Partitions))
	for _, partition := range config.Partitions {
		kind := "static"
		if partition.IsDynamic {
			kind = "dynamic"
		}

		fmt.Printf("  %s [%s] group=%s", partition.Name, kind, partition.GroupName)
		if partition.Path != "" {
			fmt.Printf(" path=%s", partition.Path)
		}
		if partition.Size != "" {
			fmt.Printf(" size=%s", partition.Size)
		}
		fmt.Println()
	}

	return nil
}

func init() {
	RootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(&describeConfigFile, "config", "c", "", "Path to the partition layout file")
	describeCmd.MarkFlagRequired("config")
	describeCmd.MarkFlagFilename("config")
}
