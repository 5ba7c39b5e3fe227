package therror

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/therror/therror/pkg/render"
	"github.com/therror/therror/pkg/serialize"
)

// Error is a single constructed error instance: an identity derived from its
// composed [*Type], an optional cause, a lazily rendered message template,
// ordered properties, and the stack captured at construction.
//
// Error implements the standard error interface and supports errors.Is and
// errors.As through Unwrap. The message template and properties are mutable
// after construction ([Error.SetMessage], [Error.Set]); everything else is
// fixed. Instances are not safe for concurrent mutation.
type Error struct {
	typ      *Type
	cause    error
	template string
	props    fields
	stack    []runtime.Frame
}

// Compile-time interface compliance checks.
var (
	_ error          = (*Error)(nil)
	_ fmt.Formatter  = (*Error)(nil)
	_ json.Marshaler = (*Error)(nil)
)

// Error implements the error interface, returning the identity and the
// rendered message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Name() + ": " + e.Message()
}

// Unwrap returns the cause, supporting errors.Is and errors.As from the
// standard library.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Cause returns the wrapped cause, or nil. The cause is set once at
// construction and never transformed; multi-level unwinding is the caller's
// responsibility by repeated calls.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Message renders the stored template against the instance's properties and
// identity fields, trimming surrounding whitespace. Rendering is lazy and
// side-effect-free: reading twice without mutation yields identical strings,
// and mutating a property changes subsequent reads.
func (e *Error) Message() string {
	if e == nil {
		return defaultMessage
	}
	return strings.TrimSpace(render.Render(e.template, e.renderContext()))
}

// SetMessage replaces the stored message template. The template is kept, not
// a pre-rendered string, so later property mutations still show up in
// [Error.Message] reads.
func (e *Error) SetMessage(template string) {
	e.template = template
}

// Render renders an arbitrary template against the same context as
// [Error.Message] without mutating the stored template. Use it to inject an
// externally sourced (for example translated) template while keeping the
// original for relogging.
func (e *Error) Render(template string) string {
	return strings.TrimSpace(render.Render(template, e.renderContext()))
}

// Template returns the stored message template, unrendered.
func (e *Error) Template() string {
	return e.template
}

// renderContext is the interpolation context: the instance's identity
// fields with properties merged over them, so a property may shadow "name".
func (e *Error) renderContext() map[string]any {
	ctx := make(map[string]any, len(e.props)+4)
	ctx["name"] = e.Name()
	if ns := e.Namespace(); ns != "" {
		ctx["namespace"] = ns
	}
	ctx["level"] = e.Level().String()
	if code, ok := e.StatusCode(); ok {
		ctx["statusCode"] = code
	}
	for _, f := range e.props {
		ctx[f.key] = f.val
	}
	return ctx
}

// Name returns the display identity, namespace prefixes included.
func (e *Error) Name() string {
	return e.typ.Name()
}

// Namespace returns the outermost namespace prefix, or "".
func (e *Error) Namespace() string {
	return e.typ.Namespace()
}

// Level returns the configured severity, defaulting to [LevelError].
func (e *Error) Level() Level {
	return e.typ.Level()
}

// StatusCode returns the configured HTTP status code. ok is false when the
// type has no [HTTP] facet.
func (e *Error) StatusCode() (code int, ok bool) {
	return e.typ.StatusCode()
}

// Type returns the composed type this instance was constructed from.
func (e *Error) Type() *Type {
	return e.typ
}

// HasCapability reports whether the instance's type carries the capability.
func (e *Error) HasCapability(c Capability) bool {
	return e.typ.HasCapability(c)
}

// Set assigns a property and returns the instance for chaining. Setting the
// reserved "message" key replaces the message template instead of storing a
// property.
func (e *Error) Set(key string, value any) *Error {
	if key == "message" {
		e.SetMessage(stringifyValue(value))
		return e
	}
	e.props.set(key, value)
	return e
}

// Get returns the property stored under key.
func (e *Error) Get(key string) (any, bool) {
	return e.props.get(key)
}

// Properties returns a copy of the properties as a map. Mutating the
// returned map does not affect the instance.
func (e *Error) Properties() map[string]any {
	return e.props.toMap()
}

// Keys returns the property names in insertion order.
func (e *Error) Keys() []string {
	return e.props.keys()
}

// StackTrace returns a copy of the frames captured at construction, starting
// at the constructor's caller.
func (e *Error) StackTrace() []runtime.Frame {
	if len(e.stack) == 0 {
		return nil
	}
	out := make([]runtime.Frame, len(e.stack))
	copy(out, e.stack)
	return out
}

// DisplayString returns the multi-line human-readable report: identity,
// message, properties, the cause chain, and the stack trace.
func (e *Error) DisplayString() string {
	return serialize.DisplayString(e)
}

// PlainObject returns the structured form with causes nested as an array
// and the stack excluded.
func (e *Error) PlainObject() map[string]any {
	return serialize.PlainObject(e)
}

// MarshalJSON encodes the plain-object form.
func (e *Error) MarshalJSON() ([]byte, error) {
	return serialize.ToJSON(e)
}

// Format implements fmt.Formatter. %s and %v print the identity and message,
// %q quotes them, and %+v prints the full display form including the cause
// chain and stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.DisplayString())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
