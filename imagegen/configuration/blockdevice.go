// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"encoding/json"
	"fmt"
)

// BlockDevice describes one physical or virtual storage unit backing the
// super-image. Size, block size and alignment are string-encoded numbers
// and are kept as-is.
type BlockDevice struct {
	BlockSize string `json:"block_size" jsonschema:"required"`
	Name      string `json:"name" jsonschema:"required"`
	Alignment string `json:"alignment" jsonschema:"required"`
	Size      string `json:"size" jsonschema:"required"`
}

// UnmarshalJSON unmarshals a BlockDevice entry, requiring every key to be
// present.
func (d *BlockDevice) UnmarshalJSON(b []byte) (err error) {
	type intermediateBlockDevice struct {
		BlockSize *string `json:"block_size"`
		Name      *string `json:"name"`
		Alignment *string `json:"alignment"`
		Size      *string `json:"size"`
	}

	var intermediate intermediateBlockDevice
	err = json.Unmarshal(b, &intermediate)
	if err != nil {
		return fmt.Errorf("failed to parse [BlockDevice]: %w", err)
	}

	switch {
	case intermediate.BlockSize == nil:
		return missingFieldError("BlockDevice", "block_size")
	case intermediate.Name == nil:
		return missingFieldError("BlockDevice", "name")
	case intermediate.Alignment == nil:
		return missingFieldError("BlockDevice", "alignment")
	case intermediate.Size == nil:
		return missingFieldError("BlockDevice", "size")
	}

	d.BlockSize = *intermediate.BlockSize
	d.Name = *intermediate.Name
	d.Alignment = *intermediate.Alignment
	d.Size = *intermediate.Size

	return
}
