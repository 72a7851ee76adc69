package config

import (
	"errors"
	"fmt"
)

// Config error codes (E201-E209)
const (
	ErrCodeRead     = "E201" // config file unreadable
	ErrCodeParse    = "E202" // malformed YAML or unknown key
	ErrCodeInvalid  = "E203" // value violates the schema
	ErrCodeSchema   = "E204" // embedded schema failed to compile
	ErrCodeOverride = "E205" // command-line override violates the schema
)

// Error describes a configuration failure.
type Error struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// IsInvalid reports whether err is a schema violation.
func IsInvalid(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalid
	}
	return false
}

// IsOverride reports whether err is a schema violation introduced by a
// command-line override.
func IsOverride(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeOverride
	}
	return false
}
