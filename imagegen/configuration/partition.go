// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"encoding/json"
	"fmt"
)

// Partition is one logical region of the super-image, assigned to a group.
// Dynamic partitions are resizable within their group's budget; static ones
// are not. Path and Size are optional in the input and default to the empty
// string.
type Partition struct {
	IsDynamic bool   `json:"is_dynamic" jsonschema:"required"`
	Name      string `json:"name" jsonschema:"required"`
	GroupName string `json:"group_name" jsonschema:"required"`
	Path      string `json:"path"`
	Size      string `json:"size"`
}

// UnmarshalJSON unmarshals a Partition entry. The intermediate type uses
// pointers for the required keys so that a present 'is_dynamic: false' is
// distinguishable from an absent key.
func (p *Partition) UnmarshalJSON(b []byte) (err error) {
	type intermediatePartition struct {
		IsDynamic *bool   `json:"is_dynamic"`
		Name      *string `json:"name"`
		GroupName *string `json:"group_name"`
		Path      string  `json:"path"`
		Size      string  `json:"size"`
	}

	var intermediate intermediatePartition
	err = json.Unmarshal(b, &intermediate)
	if err != nil {
		return fmt.Errorf("failed to parse [Partition]: %w", err)
	}

	switch {
	case intermediate.IsDynamic == nil:
		return missingFieldError("Partition", "is_dynamic")
	case intermediate.Name == nil:
		return missingFieldError("Partition", "name")
	case intermediate.GroupName == nil:
		return missingFieldError("Partition", "group_name")
	}

	p.IsDynamic = *intermediate.IsDynamic
	p.Name = *intermediate.Name
	p.GroupName = *intermediate.GroupName
	p.Path = intermediate.Path
	p.Size = intermediate.Size

	return
}
