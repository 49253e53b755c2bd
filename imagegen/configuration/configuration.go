// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Parser for the super-image partition layout configuration schema.

package configuration

import (
	"encoding/json"
	"fmt"
	"os"
)

// PartitionConfig is the root of a partition layout description: the
// super-image metadata, the block devices backing it, the partition groups
// and the partitions assigned to them. The slices preserve the declaration
// order of the input document.
type PartitionConfig struct {
	SuperMeta    SuperMeta     `json:"super_meta" jsonschema:"required"`
	NvText       string        `json:"nv_text" jsonschema:"required"`
	BlockDevices []BlockDevice `json:"block_devices" jsonschema:"required"`
	Groups       []Group       `json:"groups" jsonschema:"required"`
	NvID         string        `json:"nv_id" jsonschema:"required"`
	Partitions   []Partition   `json:"partitions" jsonschema:"required"`
}

// UnmarshalJSON unmarshals a PartitionConfig entry, requiring every
// top-level key to be present.
func (c *PartitionConfig) UnmarshalJSON(b []byte) (err error) {
	type intermediatePartitionConfig struct {
		SuperMeta    *SuperMeta     `json:"super_meta"`
		NvText       *string        `json:"nv_text"`
		BlockDevices *[]BlockDevice `json:"block_devices"`
		Groups       *[]Group       `json:"groups"`
		NvID         *string        `json:"nv_id"`
		Partitions   *[]Partition   `json:"partitions"`
	}

	var intermediate intermediatePartitionConfig
	err = json.Unmarshal(b, &intermediate)
	if err != nil {
		return fmt.Errorf("failed to parse [PartitionConfig]: %w", err)
	}

	switch {
	case intermediate.SuperMeta == nil:
		return missingFieldError("PartitionConfig", "super_meta")
	case intermediate.NvText == nil:
		return missingFieldError("PartitionConfig", "nv_text")
	case intermediate.BlockDevices == nil:
		return missingFieldError("PartitionConfig", "block_devices")
	case intermediate.Groups == nil:
		return missingFieldError("PartitionConfig", "groups")
	case intermediate.NvID == nil:
		return missingFieldError("PartitionConfig", "nv_id")
	case intermediate.Partitions == nil:
		return missingFieldError("PartitionConfig", "partitions")
	}

	c.SuperMeta = *intermediate.SuperMeta
	c.NvText = *intermediate.NvText
	c.BlockDevices = *intermediate.BlockDevices
	c.Groups = *intermediate.Groups
	c.NvID = *intermediate.NvID
	c.Partitions = *intermediate.Partitions

	return
}

// Load reads the JSON partition layout description at configFilePath and
// returns it fully populated. It performs no validation beyond decoding:
// size strings stay raw text and cross-references (such as a partition's
// group name) are left to downstream consumers to check.
//
// On failure the returned error is always a *LoadError whose Kind reports
// whether reading the file or decoding its contents failed. No partial
// configuration is ever returned.
func Load(configFilePath string) (PartitionConfig, error) {
	content, err := os.ReadFile(configFilePath)
	if err != nil {
		return PartitionConfig{}, &LoadError{Kind: IOErrorKind, Err: err}
	}

	var config PartitionConfig
	err = json.Unmarshal(content, &config)
	if err != nil {
		return PartitionConfig{}, &LoadError{Kind: ParseErrorKind, Err: err}
	}

	return config, nil
}

func missingFieldError(entityName, fieldName string) error {
	return fmt.Errorf("failed to parse [%s]: missing required field '%s'", entityName, fieldName)
}
