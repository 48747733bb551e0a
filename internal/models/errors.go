package models

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid configuration detected before any I/O,
// such as an unrecognized package-manager kind.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// NotFoundError reports a manifest file, dependency folder, or inspected
// source file missing at its resolved path.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON or unparsable markup.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsConfiguration returns true if err is a ConfigurationError
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsNotFound returns true if err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsParse returns true if err is a ParseError
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
