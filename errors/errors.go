package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // text to bytes
	PhaseDecode   Phase = "decode"   // bytes to text
	PhaseRegistry Phase = "registry" // codec registration and lookup
	PhaseConfig   Phase = "config"   // configuration loading
	PhaseMemory   Phase = "memory"   // buffer access
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedSequence Kind = "malformed_sequence"
	KindTruncatedInput    Kind = "truncated_input"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindUnknownEncoding   Kind = "unknown_encoding"
	KindInvalidInput      Kind = "invalid_input"
	KindRegistration      Kind = "registration"
	KindUnsupported       Kind = "unsupported"
	KindInvalidData       Kind = "invalid_data"
)

// Sentinels for errors.Is. They carry no phase and match any phase.
var (
	ErrOutOfRange      = &Error{Kind: KindOutOfBounds, Offset: -1}
	ErrUnknownEncoding = &Error{Kind: KindUnknownEncoding, Offset: -1}
)

// Error is the structured error type used throughout strview
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string
	Detail   string
	// Offset is the buffer position the error refers to, -1 when none.
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Encoding != "" {
		b.WriteString(" in ")
		b.WriteString(e.Encoding)
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
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

// Is reports whether target matches this error.
// A target without a phase matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
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
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Encoding sets the encoding name
func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Offset sets the buffer offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// OutOfRange creates an error for a span [offset, offset+length) that does
// not fit a buffer of bufLen bytes.
func OutOfRange(phase Phase, offset, length, bufLen int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("span of %d bytes exceeds buffer length %d", length, bufLen),
		Value:  length,
	}
}

// OffsetOutOfRange creates an error for an offset outside [0, bufLen].
func OffsetOutOfRange(phase Phase, offset, bufLen int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("offset outside buffer of length %d", bufLen),
		Value:  offset,
	}
}

// UnknownEncoding creates an error for an unregistered encoding name
func UnknownEncoding(phase Phase, name string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownEncoding,
		Encoding: name,
		Offset:   -1,
		Detail:   fmt.Sprintf("unknown string encoding %q", name),
	}
}

// Malformed creates a malformed sequence error for the bytes at offset.
func Malformed(phase Phase, encoding string, offset int, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindMalformedSequence,
		Encoding: encoding,
		Offset:   offset,
		Detail:   detail,
	}
}

// Truncated creates an error for a sequence running past the available bytes.
func Truncated(phase Phase, encoding string, offset int, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTruncatedInput,
		Encoding: encoding,
		Offset:   offset,
		Detail:   detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseRegistry,
		Kind:     KindRegistration,
		Encoding: name,
		Offset:   -1,
		Detail:   "register codec",
		Cause:    cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Offset: -1,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
