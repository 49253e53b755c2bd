// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"encoding/json"
	"fmt"
)

// Group is a named collection of dynamic partitions sharing a size budget.
// MaximumSize is optional in the input; when absent the group has no
// declared ceiling and the field is left as the empty string.
type Group struct {
	Name        string `json:"name" jsonschema:"required"`
	MaximumSize string `json:"maximum_size"`
}

// UnmarshalJSON unmarshals a Group entry, requiring the name key to be
// present.
func (g *Group) UnmarshalJSON(b []byte) (err error) {
	type intermediateGroup struct {
		Name        *string `json:"name"`
		MaximumSize string  `json:"maximum_size"`
	}

	var intermediate intermediateGroup
	err = json.Unmarshal(b, &intermediate)
	if err != nil {
		return fmt.Errorf("failed to parse [Group]: %w", err)
	}

	if intermediate.Name == nil {
		return missingFieldError("Group", "name")
	}

	g.Name = *intermediate.Name
	g.MaximumSize = intermediate.MaximumSize

	return
}
