package therror

import (
	"github.com/therror/therror/pkg/httpstatus"
)

// byStatus indexes the precreated server error types by status code.
var byStatus = make(map[int]*Type, 39)

// serverErrorType defines the precreated type for a registered status code:
// named by the registry identifier, logging at info level for 4xx codes and
// error level for 5xx codes, with the reason phrase as default message.
func serverErrorType(code int) *Type {
	s, _ := httpstatus.Get(code)

	level := LevelError
	if httpstatus.IsClientError(code) {
		level = LevelInfo
	}

	t := Define(s.Identifier, ServerError(ServerErrorOptions{
		Level:      level,
		StatusCode: code,
	}))
	byStatus[code] = t
	return t
}

// ForStatus returns the precreated type for the given HTTP status code.
// Unregistered codes fall back to [InternalServerError] with ok false, so
// the result is always usable for construction.
//
// Example:
//
//	t, _ := therror.ForStatus(resp.StatusCode)
//	return t.New("upstream call failed")
func ForStatus(code int) (*Type, bool) {
	if t, ok := byStatus[code]; ok {
		return t, true
	}
	return InternalServerError, false
}

// Precreated types, one per registered status code. Instances default
// their message to the status reason phrase and carry the HTTP, message,
// loggable, and notify facets.
var (
	// BadRequest builds errors for HTTP 400 Bad Request.
	BadRequest = serverErrorType(400)

	// Unauthorized builds errors for HTTP 401 Unauthorized.
	Unauthorized = serverErrorType(401)

	// PaymentRequired builds errors for HTTP 402 Payment Required.
	PaymentRequired = serverErrorType(402)

	// Forbidden builds errors for HTTP 403 Forbidden.
	Forbidden = serverErrorType(403)

	// NotFound builds errors for HTTP 404 Not Found.
	NotFound = serverErrorType(404)

	// MethodNotAllowed builds errors for HTTP 405 Method Not Allowed.
	MethodNotAllowed = serverErrorType(405)

	// NotAcceptable builds errors for HTTP 406 Not Acceptable.
	NotAcceptable = serverErrorType(406)

	// ProxyAuthenticationRequired builds errors for HTTP 407 Proxy Authentication Required.
	ProxyAuthenticationRequired = serverErrorType(407)

	// RequestTimeout builds errors for HTTP 408 Request Timeout.
	RequestTimeout = serverErrorType(408)

	// Conflict builds errors for HTTP 409 Conflict.
	Conflict = serverErrorType(409)

	// Gone builds errors for HTTP 410 Gone.
	Gone = serverErrorType(410)

	// LengthRequired builds errors for HTTP 411 Length Required.
	LengthRequired = serverErrorType(411)

	// PreconditionFailed builds errors for HTTP 412 Precondition Failed.
	PreconditionFailed = serverErrorType(412)

	// RequestEntityTooLarge builds errors for HTTP 413 Request Entity Too Large.
	RequestEntityTooLarge = serverErrorType(413)

	// RequestURITooLarge builds errors for HTTP 414 Request-URI Too Large.
	RequestURITooLarge = serverErrorType(414)

	// UnsupportedMediaType builds errors for HTTP 415 Unsupported Media Type.
	UnsupportedMediaType = serverErrorType(415)

	// RequestedRangeNotSatisfiable builds errors for HTTP 416 Requested Range Not Satisfiable.
	RequestedRangeNotSatisfiable = serverErrorType(416)

	// ExpectationFailed builds errors for HTTP 417 Expectation Failed.
	ExpectationFailed = serverErrorType(417)

	// ImATeapot builds errors for HTTP 418 I'm a teapot.
	ImATeapot = serverErrorType(418)

	// UnprocessableEntity builds errors for HTTP 422 Unprocessable Entity.
	UnprocessableEntity = serverErrorType(422)

	// Locked builds errors for HTTP 423 Locked.
	Locked = serverErrorType(423)

	// FailedDependency builds errors for HTTP 424 Failed Dependency.
	FailedDependency = serverErrorType(424)

	// UnorderedCollection builds errors for HTTP 425 Unordered Collection.
	UnorderedCollection = serverErrorType(425)

	// UpgradeRequired builds errors for HTTP 426 Upgrade Required.
	UpgradeRequired = serverErrorType(426)

	// PreconditionRequired builds errors for HTTP 428 Precondition Required.
	PreconditionRequired = serverErrorType(428)

	// TooManyRequests builds errors for HTTP 429 Too Many Requests.
	TooManyRequests = serverErrorType(429)

	// RequestHeaderFieldsTooLarge builds errors for HTTP 431 Request Header Fields Too Large.
	RequestHeaderFieldsTooLarge = serverErrorType(431)

	// UnavailableForLegalReasons builds errors for HTTP 451 Unavailable For Legal Reasons.
	UnavailableForLegalReasons = serverErrorType(451)

	// InternalServerError builds errors for HTTP 500 Internal Server Error.
	InternalServerError = serverErrorType(500)

	// NotImplemented builds errors for HTTP 501 Not Implemented.
	NotImplemented = serverErrorType(501)

	// BadGateway builds errors for HTTP 502 Bad Gateway.
	BadGateway = serverErrorType(502)

	// ServiceUnavailable builds errors for HTTP 503 Service Unavailable.
	ServiceUnavailable = serverErrorType(503)

	// GatewayTimeout builds errors for HTTP 504 Gateway Timeout.
	GatewayTimeout = serverErrorType(504)

	// HTTPVersionNotSupported builds errors for HTTP 505 HTTP Version Not Supported.
	HTTPVersionNotSupported = serverErrorType(505)

	// VariantAlsoNegotiates builds errors for HTTP 506 Variant Also Negotiates.
	VariantAlsoNegotiates = serverErrorType(506)

	// InsufficientStorage builds errors for HTTP 507 Insufficient Storage.
	InsufficientStorage = serverErrorType(507)

	// BandwidthLimitExceeded builds errors for HTTP 509 Bandwidth Limit Exceeded.
	BandwidthLimitExceeded = serverErrorType(509)

	// NotExtended builds errors for HTTP 510 Not Extended.
	NotExtended = serverErrorType(510)

	// NetworkAuthenticationRequired builds errors for HTTP 511 Network Authentication Required.
	NetworkAuthenticationRequired = serverErrorType(511)
)
