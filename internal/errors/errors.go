// Package errors provides structured error types for tmuxify.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindDependency
	KindInvalid
	KindValidation
	KindIO
	KindIntegration
)

func (k Kind) String() string {
	switch k {
	case KindDependency:
		return "missing dependency"
	case KindInvalid:
		return "invalid input"
	case KindValidation:
		return "validation failed"
	case KindIO:
		return "I/O error"
	case KindIntegration:
		return "integration error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for tmuxify.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Dependency errors
func DependencyMissing(name string) error {
	return E(Op("cli.Check"), KindDependency, fmt.Sprintf("required tool '%s' not found in PATH", name))
}

// Validation errors
func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindValidation, reason)
}

// Filesystem errors
func BackupFailed(path string, err error) error {
	return E(Op("writer.backup"), KindIO, fmt.Sprintf("failed to back up %s", path), err)
}

func WriteFailed(path string, err error) error {
	return E(Op("writer.Write"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Integration errors
func DirenvAllowFailed(dir string, err error) error {
	return E(Op("writer.Allow"), KindIntegration, fmt.Sprintf("direnv allow failed in %s", dir), err)
}
