package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild  Phase = "build"  // shape construction and generic substitution
	PhaseEncode Phase = "encode" // value to wire bytes
	PhaseDecode Phase = "decode" // wire bytes to value
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF  Kind = "unexpected_eof"  // buffer shorter than the shape requires
	KindUnknownVariant Kind = "unknown_variant" // enum discriminant not in the variant table
	KindInvalidTag     Kind = "invalid_tag"     // Option/Result/bool tag outside its domain
	KindInvalidCompact Kind = "invalid_compact" // big-integer compact mode declares an implausible length
	KindTrailingBytes  Kind = "trailing_bytes"  // decode succeeded but input was not fully consumed
	KindUnboundParam   Kind = "unbound_param"   // generic substitution missing a binding
	KindValueMismatch  Kind = "value_mismatch"  // dynamic value does not fit the shape
	KindNotFound       Kind = "not_found"       // registry lookup miss
	KindRegistration   Kind = "registration"    // duplicate or invalid registry entry
)

// Error is the structured error type used throughout the codec
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int  // byte offset into the input buffer, -1 when unknown
	Tag    byte // offending discriminant/tag byte, valid when HasTag
	HasTag bool
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

	if e.HasTag {
		fmt.Fprintf(&b, ": byte 0x%02x", e.Tag)
	}

	if e.Detail != "" {
		if e.HasTag {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
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
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the buffer offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Byte sets the offending tag/discriminant byte
func (b *Builder) Byte(tag byte) *Builder {
	b.err.Tag = tag
	b.err.HasTag = true
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

// UnexpectedEOF reports a buffer that ran out before the shape was satisfied.
func UnexpectedEOF(offset, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEOF,
		Offset: offset,
		Detail: fmt.Sprintf("need %d more byte(s), have %d", need, have),
	}
}

// UnknownVariant reports an enum discriminant byte with no declared variant.
func UnknownVariant(path []string, tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownVariant,
		Path:   path,
		Offset: -1,
		Tag:    tag,
		HasTag: true,
		Detail: "no variant declared for discriminant",
	}
}

// InvalidTag reports an Option/Result/bool tag byte outside {0, 1}.
func InvalidTag(offset int, tag byte, want string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidTag,
		Offset: offset,
		Tag:    tag,
		HasTag: true,
		Detail: fmt.Sprintf("expected %s", want),
	}
}

// InvalidCompact reports a malformed compact integer encoding.
func InvalidCompact(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidCompact,
		Offset: offset,
		Detail: detail,
	}
}

// TrailingBytes reports input left over after a full decode.
func TrailingBytes(offset, remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTrailingBytes,
		Offset: offset,
		Detail: fmt.Sprintf("%d byte(s) remain after decode", remaining),
	}
}

// UnboundParam reports a generic substitution with a missing binding.
func UnboundParam(name string, index, given int) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindUnboundParam,
		Offset: -1,
		Detail: fmt.Sprintf("%s references parameter _%d but only %d binding(s) given", name, index, given),
	}
}

// ValueMismatch reports a dynamic value that does not fit its shape.
func ValueMismatch(path []string, got, want string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindValueMismatch,
		Path:   path,
		Offset: -1,
		Detail: fmt.Sprintf("have %s, shape wants %s", got, want),
	}
}

// NotFound reports a registry lookup miss.
func NotFound(what, name string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotFound,
		Offset: -1,
		Detail: fmt.Sprintf("%s %q not registered", what, name),
	}
}

// Registration reports a duplicate or invalid registry entry.
func Registration(name, detail string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindRegistration,
		Offset: -1,
		Detail: fmt.Sprintf("%s: %s", name, detail),
	}
}

// WithPath returns err with the field path set, when err is a structured
// *Error and carries no path yet. Other errors pass through unchanged.
func WithPath(err error, path ...string) error {
	e, ok := err.(*Error)
	if !ok || len(e.Path) > 0 || len(path) == 0 {
		return err
	}
	clone := *e
	clone.Path = append([]string{}, path...)
	return &clone
}
