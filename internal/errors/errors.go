// Package errors provides structured error types for jsonscrub with
// categorized kinds, document paths, and error wrapping support.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents different categories of errors.
type ErrorKind string

const (
	KindIO       ErrorKind = "io"
	KindParse    ErrorKind = "parse"
	KindConfig   ErrorKind = "config"
	KindSecurity ErrorKind = "security"
	KindAnalyzer ErrorKind = "analyzer"
	KindRender   ErrorKind = "render"
	KindInternal ErrorKind = "internal"
)

// ScrubError is a structured error with context about where in the
// sanitization flow it occurred.
type ScrubError struct {
	Kind    ErrorKind
	Op      string // operation that failed, e.g. "sanitizer.RemoveNulls"
	Path    string // file path or JSON document path, when known
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ScrubError) Error() string {
	var parts []string

	if e.Kind != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Kind))
	}
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *ScrubError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by kind.
func (e *ScrubError) Is(target error) bool {
	var t *ScrubError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a ScrubError with the given kind and message.
func New(kind ErrorKind, op, message string) *ScrubError {
	return &ScrubError{Kind: kind, Op: op, Message: message}
}

// Wrap creates a ScrubError wrapping a cause.
func Wrap(kind ErrorKind, op, message string, cause error) *ScrubError {
	return &ScrubError{Kind: kind, Op: op, Message: message, Cause: cause}
}

// IOError creates an I/O error for a file path.
func IOError(op, path string, cause error) *ScrubError {
	return &ScrubError{Kind: KindIO, Op: op, Path: path, Message: "i/o failure", Cause: cause}
}

// ParseError creates a parse error for a file path.
func ParseError(op, path string, cause error) *ScrubError {
	return &ScrubError{Kind: KindParse, Op: op, Path: path, Message: "invalid JSON", Cause: cause}
}

// SecurityError creates a security validation error.
func SecurityError(op, path, message string) *ScrubError {
	return &ScrubError{Kind: KindSecurity, Op: op, Path: path, Message: message}
}

// IsKind reports whether err is (or wraps) a ScrubError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *ScrubError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
