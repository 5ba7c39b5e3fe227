package therror

import (
	"strconv"
	"strings"

	"github.com/therror/therror/pkg/httpstatus"
)

// defaultStatus is assumed when the [HTTP] facet gets no usable code and
// when [Error.ToPayload] runs on an instance without an HTTP facet.
const defaultStatus = 500

// Generic payload content returned for server-fault statuses. The real
// message and properties stay on the instance for logging; only the payload
// hides them.
const (
	hiddenPayloadError   = "InternalServerError"
	hiddenPayloadMessage = "An internal server error occurred"
)

// Payload is the client-safe representation of an HTTP-faceted error:
// exactly an error name and a message, always both present.
type Payload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ToPayload returns the client-safe document for this error. Client-fault
// statuses (4xx) expose the real identity and rendered message; server-fault
// statuses (5xx) always return the generic InternalServerError payload, no
// matter how descriptive the underlying message is, so internals never leak
// to untrusted consumers. Instances without an HTTP facet are treated as
// server faults.
func (e *Error) ToPayload() Payload {
	code, ok := e.StatusCode()
	if !ok {
		code = defaultStatus
	}
	if code >= 500 {
		return Payload{
			Error:   hiddenPayloadError,
			Message: hiddenPayloadMessage,
		}
	}
	return Payload{
		Error:   e.Name(),
		Message: e.Message(),
	}
}

// coerceStatus normalizes the flexible status parameter of [HTTP]. Numbers
// pass through (unrecognized ones included); numeric strings are parsed;
// anything else yields the default 500.
func coerceStatus(v any) int {
	switch c := v.(type) {
	case nil:
		return defaultStatus
	case int:
		return c
	case int32:
		return int(c)
	case int64:
		return int(c)
	case uint:
		return int(c)
	case float64:
		return int(c)
	case httpstatus.Status:
		return c.Code
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(c)); err == nil {
			return n
		}
		return defaultStatus
	default:
		return defaultStatus
	}
}
