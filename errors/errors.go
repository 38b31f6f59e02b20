package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // datum construction
	PhaseAccess    Phase = "access"    // getters and lookups
	PhaseMutate    Phase = "mutate"    // setters, appends, inserts
	PhaseAlloc     Phase = "alloc"     // allocator facade
	PhaseRead      Phase = "read"      // reader cursor
	PhaseWrite     Phase = "write"     // writer cursor
	PhaseConvert   Phase = "convert"   // native value conversion
	PhaseLookup    Phase = "lookup"    // path navigation
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindNilPointer     Kind = "nil_pointer"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
	KindNotInitialized Kind = "not_initialized"
	KindInvalidData    Kind = "invalid_data"
	KindOverflow       Kind = "overflow"
	KindAllocation     Kind = "allocation"
	KindOutOfSpace     Kind = "out_of_space"
	KindUnsupported    Kind = "unsupported"
)

// Class is the coarse error taxonomy. A Class is itself an error so it can
// be used as an errors.Is target.
type Class string

const (
	ClassInvalidArgument   Class = "invalid_argument"
	ClassResourceExhausted Class = "resource_exhausted"
	ClassUnsupported       Class = "unsupported"
)

// Class sentinels for errors.Is.
var (
	ErrInvalidArgument   error = ClassInvalidArgument
	ErrResourceExhausted error = ClassResourceExhausted
	ErrUnsupported       error = ClassUnsupported
)

func (c Class) Error() string {
	return string(c)
}

// Class returns the class this kind belongs to.
func (k Kind) Class() Class {
	switch k {
	case KindAllocation, KindOutOfSpace:
		return ClassResourceExhausted
	case KindUnsupported:
		return ClassUnsupported
	default:
		return ClassInvalidArgument
	}
}

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string
	Actual   string
	Detail   string
	Path     []string
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

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Expected != "" && e.Actual != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		} else if e.Expected != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
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

// Class returns the class of the error's kind
func (e *Error) Class() Class {
	return e.Kind.Class()
}

// Is reports whether target matches this error. A *Error target matches on
// Phase and Kind; a Class target matches on class.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return e.Phase == t.Phase && e.Kind == t.Kind
	case Class:
		return e.Kind.Class() == t
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

// Expected sets the expected kind or type name
func (b *Builder) Expected(t string) *Builder {
	b.err.Expected = t
	return b
}

// Actual sets the actual kind or type name
func (b *Builder) Actual(t string) *Builder {
	b.err.Actual = t
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, expected, actual string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNilPointer,
		Path:     path,
		Expected: what,
		Detail:   "nil pointer",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NotFound creates a missing key error
func NotFound(phase Phase, path []string, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Path:   path,
		Detail: fmt.Sprintf("key %q not found", key),
		Value:  key,
	}
}

// InvalidInput creates a precondition violation error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// NotInitialized creates an error for use of a released handle
func NotInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: what + " used after release",
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

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverflow,
		Path:     path,
		Expected: targetType,
		Detail:   fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:    value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Value:  size,
	}
}

// OutOfSpace creates a cursor capacity error
func OutOfSpace(phase Phase, wanted, remaining int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfSpace,
		Detail: fmt.Sprintf("%d bytes wanted, %d remaining", wanted, remaining),
		Value:  wanted,
	}
}

// Unsupported creates an unsupported feature error
func Unsupported(phase Phase, feature string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: feature + " is not supported",
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

// IsInvalidArgument reports whether err belongs to the invalid_argument class.
func IsInvalidArgument(err error) bool {
	return is(err, ClassInvalidArgument)
}

// IsResourceExhausted reports whether err belongs to the resource_exhausted class.
func IsResourceExhausted(err error) bool {
	return is(err, ClassResourceExhausted)
}

// IsUnsupported reports whether err belongs to the unsupported class.
func IsUnsupported(err error) bool {
	return is(err, ClassUnsupported)
}

func is(err error, c Class) bool {
	return errors.Is(err, c)
}
