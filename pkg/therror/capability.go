package therror

// Capability identifies a behavioral facet composed into an error type.
// Downstream code branches on capabilities instead of inspecting concrete
// types: a serializer asks for [CapabilitySerializable], an HTTP middleware
// for [CapabilityHTTP].
//
// Capabilities are contributed by facet constructors and tested with
// [Error.HasCapability], [Type.HasCapability], or the package-level
// [HasCapability].
type Capability string

const (
	// CapabilityNamespaced is contributed by [Namespaced]: the identity
	// carries a namespace prefix.
	CapabilityNamespaced Capability = "namespaced"

	// CapabilitySerializable is contributed by [Serializable]: the type
	// opts in to display-string and plain-object serialization.
	CapabilitySerializable Capability = "serializable"

	// CapabilityNotify is contributed by [Notificator]: construction
	// publishes the instance on the notification bus.
	CapabilityNotify Capability = "notify"

	// CapabilityLoggable is contributed by [Loggable]: the type carries a
	// configured severity level.
	CapabilityLoggable Capability = "loggable"

	// CapabilityHTTP is contributed by [HTTP]: the type carries a status
	// code and produces client-safe payloads.
	CapabilityHTTP Capability = "http"

	// CapabilityGRPC is contributed by [GRPC]: the type carries an explicit
	// gRPC status code.
	CapabilityGRPC Capability = "grpc"
)

// String returns the string representation of the capability.
func (c Capability) String() string {
	return string(c)
}
