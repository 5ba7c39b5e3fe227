package therror

import (
	"google.golang.org/grpc/codes"

	"github.com/therror/therror/pkg/httpstatus"
	"github.com/therror/therror/pkg/notify"
)

// Define declares a named subtype of base. The name becomes the instance
// identity (after namespace prefixes) and is stable regardless of how many
// facets wrap the result. Omitting base declares a subtype of the base type.
//
// Example:
//
//	var InvalidToken = therror.Define("InvalidToken",
//	    therror.Namespaced("Auth", therror.HTTP(401)))
func Define(name string, base ...*Type) *Type {
	return &Type{parent: baseOf(base), name: name}
}

// Namespaced prefixes the identity of base with name + ".". Stacked
// namespaces accumulate with the outermost facet leftmost; when the chain
// declares no subtype name the namespace alone becomes the identity.
// Instances expose the outermost prefix through [Error.Namespace].
func Namespaced(name string, base ...*Type) *Type {
	return &Type{
		parent:     baseOf(base),
		capability: CapabilityNamespaced,
		namespace:  name,
	}
}

// Serializable marks base with [CapabilitySerializable] so downstream
// serializers can branch on the type's consent to full serialization.
// [Error.DisplayString] and [Error.PlainObject] work on every instance;
// the facet only contributes the capability flag.
func Serializable(base ...*Type) *Type {
	return &Type{
		parent:     baseOf(base),
		capability: CapabilitySerializable,
	}
}

// Notificator publishes every constructed instance on the process-wide
// notification bus, topic [notify.TopicCreate], after construction has
// fully composed the instance. The bus is resolved at publish time, so
// subscribing after type composition still observes later constructions.
func Notificator(base ...*Type) *Type {
	return &Type{
		parent:     baseOf(base),
		capability: CapabilityNotify,
	}
}

// NotificatorBus is [Notificator] publishing on an explicit bus instead of
// the process-wide one. A nil bus behaves like [Notificator].
func NotificatorBus(bus *notify.Bus, base ...*Type) *Type {
	return &Type{
		parent:     baseOf(base),
		capability: CapabilityNotify,
		bus:        bus,
	}
}

// Loggable configures the severity [Error.Log] reports. An invalid or empty
// level falls back to [LevelError].
func Loggable(level Level, base ...*Type) *Type {
	if !level.Valid() {
		level = LevelError
	}
	return &Type{
		parent:     baseOf(base),
		capability: CapabilityLoggable,
		level:      level,
	}
}

// WithMessage sets the default message template used when construction
// supplies no explicit message. Caller-supplied messages still win; with
// several WithMessage facets the outermost one wins.
func WithMessage(template string, base ...*Type) *Type {
	return &Type{
		parent:      baseOf(base),
		template:    template,
		hasTemplate: true,
	}
}

// WithProperties presets per-type properties merged into every instance
// below construction arguments: an argument property overrides a preset
// with the same key. The map is copied at composition time.
func WithProperties(props map[string]any, base ...*Type) *Type {
	t := &Type{parent: baseOf(base)}
	t.presets.mergeMap(props)
	return t
}

// HTTP maps base to an HTTP status code. The code is coerced from a number
// or string, defaulting to 500; unrecognized codes pass through numerically
// but use the 500 reason phrase for text purposes. The registry's reason
// phrase becomes the default message, and instances gain meaningful
// [Error.StatusCode] and [Error.ToPayload] behavior.
func HTTP(statusCode any, base ...*Type) *Type {
	code := coerceStatus(statusCode)
	return &Type{
		parent:      baseOf(base),
		capability:  CapabilityHTTP,
		status:      code,
		hasStatus:   true,
		template:    httpstatus.Text(code),
		hasTemplate: true,
	}
}

// GRPC maps base to an explicit gRPC status code, overriding the one
// otherwise derived from the HTTP status. Instances satisfy the
// GRPCStatus() convention understood by google.golang.org/grpc/status.
func GRPC(code codes.Code, base ...*Type) *Type {
	return &Type{
		parent:     baseOf(base),
		capability: CapabilityGRPC,
		grpcCode:   code,
		hasGRPC:    true,
	}
}

// ServerErrorOptions configures [ServerError]. Zero values select the
// defaults: status 500, level [LevelError], message from the status
// registry.
type ServerErrorOptions struct {
	// Level is the severity reported by Log.
	Level Level

	// StatusCode is the HTTP status; 0 means 500.
	StatusCode int

	// Message is the default message template; empty keeps the status
	// reason phrase.
	Message string
}

// ServerError bundles the facets a service error needs. It is pure
// composition sugar for
//
//	Notificator(Loggable(level, WithMessage(message, HTTP(statusCode, base))))
//
// with Notificator outermost so the fully composed instance is what gets
// published.
func ServerError(opts ServerErrorOptions, base ...*Type) *Type {
	code := opts.StatusCode
	if code == 0 {
		code = defaultStatus
	}

	t := HTTP(code, baseOf(base))
	if opts.Message != "" {
		t = WithMessage(opts.Message, t)
	}
	t = Loggable(opts.Level, t)
	return Notificator(t)
}
