// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"fmt"
)

// ErrorKind classifies why loading a partition layout failed.
type ErrorKind int

const (
	// IOErrorKind indicates the layout file could not be opened or read.
	IOErrorKind ErrorKind = iota
	// ParseErrorKind indicates the file contents were not valid JSON or did
	// not match the expected shape.
	ParseErrorKind
)

// LoadError is the error type returned by Load. Err carries the underlying
// system or decoder diagnostic.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case IOErrorKind:
		return fmt.Sprintf("file operation error: %v", e.Err)
	default:
		return fmt.Sprintf("JSON parsing error: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
