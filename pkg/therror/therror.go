// Package therror provides structured, templated, causally-chained errors
// built by composing behavioral facets over a common base type. It lets
// callers define rich error types (namespaced, loggable, HTTP-mapped,
// notification-publishing) without rewriting construction boilerplate per
// type.
//
// # Types and Instances
//
// A [*Type] describes an error type: its name, namespace, severity level,
// HTTP status, default message template, and preset properties. Types are
// built by composing facets ([Namespaced], [Loggable], [HTTP], [WithMessage],
// [Notificator], ...) over the base type and naming the result with [Define]:
//
//	var UserNotFound = therror.Define("UserNotFound",
//	    therror.Namespaced("Accounts",
//	        therror.HTTP(404)))
//
// A [*Error] is a single constructed instance of a type, carrying its cause,
// message template, and properties:
//
//	err := UserNotFound.New("user ${id} not found", map[string]any{"id": id})
//
// # Construction
//
// Constructors accept a flexible argument list normalized to a canonical
// {cause, message template, properties} triple:
//
//	t.New()                                  // type default message
//	t.New("boom")                            // message
//	t.New("boom ${id}", map[string]any{...}) // message + properties
//	t.New(cause)                             // wrap, message from cause
//	t.New(cause, "boom", props)              // wrap + message + properties
//	t.New(map[string]any{"message": "boom"}) // properties with message key
//
// The typed constructors [Type.Wrap], [Type.Wrapf], and [Type.Newf] cover the
// common shapes with compile-time checking. Construction never fails:
// malformed input degrades to default values, because error construction must
// not itself become a source of failure during failure handling.
//
// # Messages
//
// Messages are stored as templates and rendered lazily on every read against
// the instance's properties, so mutating a property changes subsequent
// [Error.Message] reads. [Error.SetMessage] replaces the template without
// touching properties; [Error.Render] renders an arbitrary template (for
// example a translated one) against the same context without mutating the
// stored template.
//
// # HTTP Payloads
//
// HTTP-faceted errors expose [Error.ToPayload], the client-safe
// {error, message} document. Server-fault statuses (5xx) always yield the
// generic InternalServerError payload regardless of the real message, which
// stays available on the instance for logging.
//
// # Thread Safety
//
// Types are immutable and safe to share. Instances are not safe for
// concurrent mutation; construct, then hand off. The process-wide default
// logger ([SetDefaultLogger]) and the notification bus are guarded
// internally and may be reconfigured at any time from any goroutine.
package therror

import "fmt"

// root is the base error type every composed type descends from. It carries
// no facets; its instances fall back to the literal "Therror" identity.
var root = &Type{}

// Base returns the base error type. Facet constructors default to it when no
// explicit base is given; it is exported for callers that want to test
// family membership with [HasType].
func Base() *Type {
	return root
}

// New constructs an instance of the base type from a flexible argument list.
// See the package documentation for the accepted shapes.
func New(args ...any) *Error {
	return root.construct(parseArgs(args))
}

// Newf constructs an instance of the base type with an fmt-formatted
// message. The formatted result is installed as the message template.
func Newf(format string, args ...any) *Error {
	return root.construct(parsed{template: fmt.Sprintf(format, args...), explicit: true})
}

// Wrap constructs an instance of the base type wrapping cause. Returns nil
// if cause is nil, a typed nil included. Remaining arguments are parsed
// like [New].
func Wrap(cause error, args ...any) *Error {
	if isNilValue(cause) {
		return nil
	}
	return root.construct(parseArgs(prepend(cause, args)))
}

// Wrapf constructs an instance of the base type wrapping cause, with an
// fmt-formatted message. Returns nil if cause is nil.
func Wrapf(cause error, format string, args ...any) *Error {
	if isNilValue(cause) {
		return nil
	}
	return root.construct(parsed{
		cause:    cause,
		template: fmt.Sprintf(format, args...),
		explicit: true,
	})
}
