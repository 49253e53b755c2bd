// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"encoding/json"
	"fmt"
)

// SuperMeta describes the super-image itself: where the image file lives and
// how large it is. Size is stored as raw text; unit handling happens
// downstream.
type SuperMeta struct {
	Path string `json:"path" jsonschema:"required"`
	Size string `json:"size" jsonschema:"required"`
}

// UnmarshalJSON unmarshals a SuperMeta entry, requiring both keys to be
// present.
func (s *SuperMeta) UnmarshalJSON(b []byte) (err error) {
	type intermediateSuperMeta struct {
		Path *string `json:"path"`
		Size *string `json:"size"`
	}

	var intermediate intermediateSuperMeta
	err = json.Unmarshal(b, &intermediate)
	if err != nil {
		return fmt.Errorf("failed to parse [SuperMeta]: %w", err)
	}

	switch {
	case intermediate.Path == nil:
		return missingFieldError("SuperMeta", "path")
	case intermediate.Size == nil:
		return missingFieldError("SuperMeta", "size")
	}

	s.Path = *intermediate.Path
	s.Size = *intermediate.Size

	return
}
