package config

import (
	"errors"
	"fmt"
)

// Config error codes (E300-E309)
const (
	ErrCodeRead   = "E301" // file could not be read
	ErrCodeSyntax = "E302" // file is not valid YAML
	ErrCodeSchema = "E303" // file does not satisfy the schema
	ErrCodeValue  = "E304" // a value is well-formed but unusable
)

// Error describes a configuration file that could not be loaded.
type Error struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration Error.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// CodeOf returns the code of a configuration Error, or "".
func CodeOf(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
