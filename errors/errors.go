package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAttach Phase = "attach" // field registration
	PhaseParse  Phase = "parse"  // buffer parsing
	PhaseLoad   Phase = "load"   // stream loading
	PhaseEmit   Phase = "emit"   // byte emission
	PhaseValue  Phase = "value"  // value assignment
	PhaseSchema Phase = "schema" // layout definition loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownField   Kind = "unknown_field"
	KindInvalidField   Kind = "invalid_field"
	KindInvalidValue   Kind = "invalid_value"
	KindDuplicateName  Kind = "duplicate_name"
	KindBufferUnderrun Kind = "buffer_underrun"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidData    Kind = "invalid_data"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// UnknownField creates an error for access to a name not present in a structure
func UnknownField(phase Phase, path []string, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownField,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", name),
	}
}

// InvalidField creates an error for attaching something that is not a field
func InvalidField(phase Phase, path []string, name string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidField,
		Path:   path,
		Detail: fmt.Sprintf("field %q: %s", name, detail),
	}
}

// InvalidValue creates an error for a value a primitive rejects
func InvalidValue(phase Phase, path []string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Path:   path,
		Detail: detail,
		Value:  value,
	}
}

// DuplicateName creates an error for attaching two fields under one name
func DuplicateName(phase Phase, path []string, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicateName,
		Path:   path,
		Detail: fmt.Sprintf("field %q already exists", name),
	}
}

// BufferUnderrun creates an error for a decode that ran past the source
func BufferUnderrun(phase Phase, path []string, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferUnderrun,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// OutOfBounds creates an error for a write outside the emit region
func OutOfBounds(phase Phase, path []string, offset, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("offset %d out of bounds (length %d)", offset, length),
		Value:  offset,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
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

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
