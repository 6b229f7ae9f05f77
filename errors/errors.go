package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred
type Phase string

const (
	PhaseSearch Phase = "search" // candidate path probing
	PhaseLoad   Phase = "load"   // artifact loading
	PhaseInit   Phase = "init"   // runtime initialization
	PhaseCall   Phase = "call"   // export invocation
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindExhausted       Kind = "exhausted"
	KindInvalidArtifact Kind = "invalid_artifact"
	KindBadSymbol       Kind = "bad_symbol"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
	KindNotInitialized  Kind = "not_initialized"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error for a probed path
func NotFound(phase Phase, what, path string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Path:   path,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// InvalidArtifact creates an error for an artifact that resolved but is
// not loadable
func InvalidArtifact(phase Phase, path, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArtifact,
		Path:   path,
		Detail: detail,
	}
}

// BadSymbol creates an error for a missing or mistyped export symbol
func BadSymbol(path, symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindBadSymbol,
		Path:   path,
		Detail: fmt.Sprintf("symbol %q", symbol),
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error for a missing component
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Load creates an artifact loading error
func Load(detail string, path string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidArtifact,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// Init creates a runtime initialization error
func Init(detail string, path string, cause error) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInvalidArtifact,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// SearchExhaustedError is returned when no candidate path resolved across
// any spec. Attempted preserves every probed path in probe order; its
// length is always a multiple of the per-spec candidate count.
type SearchExhaustedError struct {
	Attempted []string
}

func (e *SearchExhaustedError) Error() string {
	if len(e.Attempted) == 0 {
		return "[search] exhausted: no candidate paths probed"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("no loadable artifact found after %d probes:\n", len(e.Attempted)))
	for _, path := range e.Attempted {
		b.WriteString("  - ")
		b.WriteString(path)
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *SearchExhaustedError) Is(target error) bool {
	_, ok := target.(*SearchExhaustedError)
	return ok
}
