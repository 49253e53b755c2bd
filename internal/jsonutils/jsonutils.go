// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Helpers for reading and writing JSON files.

package jsonutils

import (
	"encoding/json"
	"fmt"
	"os"
)

const filePermissions = 0644

// ReadJSONFile reads the file at path and unmarshals its contents into data.
func ReadJSONFile(path string, data interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	err = json.Unmarshal(content, data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal file '%s': %w", path, err)
	}

	return nil
}

// WriteJSONFile marshals data with indentation and writes it to path,
// creating or truncating the file.
func WriteJSONFile(path string, data interface{}) error {
	content, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal data for file '%s': %w", path, err)
	}

	err = os.WriteFile(path, append(content, '\n'), filePermissions)
	if err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	return nil
}
