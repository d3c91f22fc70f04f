// Package errors provides custom error types for the clippysay CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoInput       = errors.New("no input text")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidMascot = errors.New("invalid mascot")
	ErrJSONPath      = errors.New("json path not found")
)

// InputError represents a failure to read the message text
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to read %s", e.Source)
	}
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying read error
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError
func NewInputError(source string, err error) *InputError {
	return &InputError{Source: source, Err: err}
}

// ConfigError represents an invalid configuration key or value
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Key, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ConfigError) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// MascotError represents a mascot file that cannot be used
type MascotError struct {
	Path    string
	Message string
}

func (e *MascotError) Error() string {
	return fmt.Sprintf("mascot %s: %s", e.Path, e.Message)
}

// Is allows comparison with sentinel errors
func (e *MascotError) Is(target error) bool {
	if target == ErrInvalidMascot {
		return true
	}
	_, ok := target.(*MascotError)
	return ok
}

// NewMascotError creates a new MascotError
func NewMascotError(path, message string) *MascotError {
	return &MascotError{Path: path, Message: message}
}

// JSONPathError is returned when a JSON path selects nothing
type JSONPathError struct {
	Path string
}

func (e *JSONPathError) Error() string {
	return fmt.Sprintf("json path %q not found in input", e.Path)
}

// Is allows comparison with sentinel errors
func (e *JSONPathError) Is(target error) bool {
	if target == ErrJSONPath {
		return true
	}
	_, ok := target.(*JSONPathError)
	return ok
}

// NewJSONPathError creates a new JSONPathError
func NewJSONPathError(path string) *JSONPathError {
	return &JSONPathError{Path: path}
}
