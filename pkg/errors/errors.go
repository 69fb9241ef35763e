// Package errors defines the typed failures tint's infrastructure returns.
// Each type matches its sentinel through errors.Is and carries a suggestion
// the CLI prints under the failure.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across wrapping layers.
var (
	ErrParse      = errors.New("parse error")
	ErrValidation = errors.New("validation error")
	ErrStore      = errors.New("store error")
)

// ParseError is a configuration file that could not be read or decoded.
// Line is 1-based and zero when unknown.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps err as a ParseError for path.
func NewParseError(path string, line int, err error) error {
	e := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%v: %s: %s", ErrParse, location, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Suggestion points at the offending line when it is known.
func (e *ParseError) Suggestion() string {
	if e.Line > 0 {
		return fmt.Sprintf("Check the YAML near line %d of %s.", e.Line, e.Path)
	}
	return fmt.Sprintf("Check that %s exists and is valid YAML.", e.Path)
}

// ValidationError is a configuration value that failed validation. Field is
// the dotted YAML path, e.g. "overrides.light.primary".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Suggestion names the field to fix.
func (e *ValidationError) Suggestion() string {
	if e.Field == "" {
		return "Fix the configuration and try again."
	}
	return fmt.Sprintf("Fix %s in the configuration file, flags or environment.", e.Field)
}

// StoreError is a preference backend failing an operation (load, save,
// open) on a key.
type StoreError struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

// NewStoreError wraps err as a StoreError.
func NewStoreError(backend, op, key string, err error) error {
	return &StoreError{Backend: backend, Op: op, Key: key, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	target := e.Op
	if e.Key != "" {
		target = fmt.Sprintf("%s %q", e.Op, e.Key)
	}
	return fmt.Sprintf("%v [%s] %s: %v", ErrStore, e.Backend, target, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *StoreError) Is(target error) bool { return target == ErrStore }

// Suggestion proposes another backend.
func (e *StoreError) Suggestion() string {
	return fmt.Sprintf("Check the %s store location is writable, or pass --store memory.", e.Backend)
}

// SuggestionFor returns the suggestion of the first error in err's chain that
// carries one, otherwise fallback.
func SuggestionFor(err error, fallback string) string {
	var s interface{ Suggestion() string }
	if errors.As(err, &s) {
		return s.Suggestion()
	}
	return fallback
}
