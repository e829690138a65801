package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which layer of the library raised the error
type Phase string

const (
	PhaseRegistry Phase = "registry" // runtime unit-metadata lookups and conversion
	PhaseBridge   Phase = "bridge"   // typed quantity <-> erased quantity
	PhaseBoundary Phase = "boundary" // C ABI entry points
	PhaseParse    Phase = "parse"    // unit name parsing (CLI)
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownUnit           Kind = "unknown_unit"
	KindIncompatibleDimension Kind = "incompatible_dimension"
	KindNullPointer           Kind = "null_pointer"
	KindInvalidValue          Kind = "invalid_value"
	KindInvalidInput          Kind = "invalid_input"
	KindInternal              Kind = "internal"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Src    string
	Dst    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Src != "" || e.Dst != "" {
		b.WriteString(": ")
		if e.Src != "" && e.Dst != "" {
			b.WriteString(e.Src)
			b.WriteString(" -> ")
			b.WriteString(e.Dst)
		} else if e.Src != "" {
			b.WriteString(e.Src)
		} else {
			b.WriteString(e.Dst)
		}
	}

	if e.Detail != "" {
		if e.Src != "" || e.Dst != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Units sets the source and destination unit names
func (b *Builder) Units(src, dst string) *Builder {
	b.err.Src = src
	b.err.Dst = dst
	return b
}

// Src sets the source unit name
func (b *Builder) Src(name string) *Builder {
	b.err.Src = name
	return b
}

// Dst sets the destination unit name
func (b *Builder) Dst(name string) *Builder {
	b.err.Dst = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownUnit creates an error for a unit discriminant outside the registry
func UnknownUnit(phase Phase, discriminant int32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownUnit,
		Detail: fmt.Sprintf("unit discriminant %d is not registered", discriminant),
	}
}

// IncompatibleDimension creates an error for a conversion between dimensions
func IncompatibleDimension(phase Phase, src, dst string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIncompatibleDimension,
		Src:   src,
		Dst:   dst,
	}
}

// NullPointer creates an error for a nil output pointer at the boundary
func NullPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullPointer,
		Detail: fmt.Sprintf("%s is nil", what),
	}
}

// InvalidInput creates a general invalid-input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Internal wraps a recovered panic or other unexpected failure
func Internal(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindInternal,
		Cause: cause,
	}
}
