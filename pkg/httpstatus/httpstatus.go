// Package httpstatus provides the static registry of HTTP status codes used
// for error classification and payload shaping. It maps each registered code
// (400–511) to its reason phrase and to a PascalCase identifier suitable for
// generated type names.
//
// The phrase table is a stable external contract: downstream consumers depend
// on the exact phrase strings for default messages and on the identifiers for
// error names, so entries are never renamed once published. Note that a few
// phrases predate the current IANA wording (414 "Request-URI Too Large",
// 425 "Unordered Collection", 509 "Bandwidth Limit Exceeded") and are kept
// as-is for compatibility.
package httpstatus

import "sort"

// Status is a single registry entry: a numeric HTTP status code, its reason
// phrase, and the PascalCase identifier derived from the phrase.
type Status struct {
	// Code is the numeric HTTP status code (e.g., 404).
	Code int

	// Phrase is the reason phrase associated with the code
	// (e.g., "Not Found").
	Phrase string

	// Identifier is the PascalCase name derived from the phrase
	// (e.g., "NotFound"), used for generated error type names.
	Identifier string
}

// registry holds every supported status code in ascending order.
var registry = []Status{
	{400, "Bad Request", "BadRequest"},
	{401, "Unauthorized", "Unauthorized"},
	{402, "Payment Required", "PaymentRequired"},
	{403, "Forbidden", "Forbidden"},
	{404, "Not Found", "NotFound"},
	{405, "Method Not Allowed", "MethodNotAllowed"},
	{406, "Not Acceptable", "NotAcceptable"},
	{407, "Proxy Authentication Required", "ProxyAuthenticationRequired"},
	{408, "Request Timeout", "RequestTimeout"},
	{409, "Conflict", "Conflict"},
	{410, "Gone", "Gone"},
	{411, "Length Required", "LengthRequired"},
	{412, "Precondition Failed", "PreconditionFailed"},
	{413, "Request Entity Too Large", "RequestEntityTooLarge"},
	{414, "Request-URI Too Large", "RequestURITooLarge"},
	{415, "Unsupported Media Type", "UnsupportedMediaType"},
	{416, "Requested Range Not Satisfiable", "RequestedRangeNotSatisfiable"},
	{417, "Expectation Failed", "ExpectationFailed"},
	{418, "I'm a teapot", "ImATeapot"},
	{422, "Unprocessable Entity", "UnprocessableEntity"},
	{423, "Locked", "Locked"},
	{424, "Failed Dependency", "FailedDependency"},
	{425, "Unordered Collection", "UnorderedCollection"},
	{426, "Upgrade Required", "UpgradeRequired"},
	{428, "Precondition Required", "PreconditionRequired"},
	{429, "Too Many Requests", "TooManyRequests"},
	{431, "Request Header Fields Too Large", "RequestHeaderFieldsTooLarge"},
	{451, "Unavailable For Legal Reasons", "UnavailableForLegalReasons"},
	{500, "Internal Server Error", "InternalServerError"},
	{501, "Not Implemented", "NotImplemented"},
	{502, "Bad Gateway", "BadGateway"},
	{503, "Service Unavailable", "ServiceUnavailable"},
	{504, "Gateway Timeout", "GatewayTimeout"},
	{505, "HTTP Version Not Supported", "HTTPVersionNotSupported"},
	{506, "Variant Also Negotiates", "VariantAlsoNegotiates"},
	{507, "Insufficient Storage", "InsufficientStorage"},
	{509, "Bandwidth Limit Exceeded", "BandwidthLimitExceeded"},
	{510, "Not Extended", "NotExtended"},
	{511, "Network Authentication Required", "NetworkAuthenticationRequired"},
}

// byCode indexes the registry for constant-time lookups.
var byCode = make(map[int]Status, len(registry))

func init() {
	for _, s := range registry {
		byCode[s.Code] = s
	}
}

// Get returns the registry entry for the given status code.
// Returns the zero Status and false if the code is not registered.
func Get(code int) (Status, bool) {
	s, ok := byCode[code]
	return s, ok
}

// Phrase returns the reason phrase for the given status code.
// Returns an empty string and false if the code is not registered.
func Phrase(code int) (string, bool) {
	s, ok := byCode[code]
	return s.Phrase, ok
}

// Text returns the reason phrase for the given status code, falling back to
// the 500 phrase ("Internal Server Error") for unregistered codes. Unlike
// [Phrase], Text never reports absence; use it where a displayable string is
// always required.
func Text(code int) string {
	if s, ok := byCode[code]; ok {
		return s.Phrase
	}
	return byCode[500].Phrase
}

// Identifier returns the PascalCase identifier for the given status code.
// Returns an empty string and false if the code is not registered.
func Identifier(code int) (string, bool) {
	s, ok := byCode[code]
	return s.Identifier, ok
}

// Codes returns all registered status codes in ascending order.
// The returned slice is a copy and may be modified by the caller.
func Codes() []int {
	codes := make([]int, 0, len(registry))
	for _, s := range registry {
		codes = append(codes, s.Code)
	}
	sort.Ints(codes)
	return codes
}

// All returns every registry entry in ascending code order.
// The returned slice is a copy and may be modified by the caller.
func All() []Status {
	all := make([]Status, len(registry))
	copy(all, registry)
	return all
}

// IsClientError reports whether the status code is in the 4xx range.
func IsClientError(code int) bool {
	return code >= 400 && code < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func IsServerError(code int) bool {
	return code >= 500 && code < 600
}
