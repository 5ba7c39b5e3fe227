package therror

import (
	"errors"
)

// AsError attempts to convert an error to an *Error.
// Returns the Error and true if successful, nil and false otherwise.
// This function traverses the error chain using errors.As. A nil *Error
// boxed in the chain is no match: there is nothing usable to return.
//
// Example:
//
//	if e, ok := therror.AsError(err); ok {
//	    log.Printf("error name: %s, message: %s", e.Name(), e.Message())
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsTherror reports whether the error chain contains an *Error.
//
// Example:
//
//	if therror.IsTherror(err) {
//	    // safe to serialize with full identity and properties
//	}
func IsTherror(err error) bool {
	_, ok := AsError(err)
	return ok
}

// HasType reports whether the error chain contains an *Error constructed
// from t or from a type derived from t. Returns false when err or t is nil.
//
// Example:
//
//	if therror.HasType(err, therror.NotFound) {
//	    // return 404 Not Found
//	}
func HasType(err error, t *Type) bool {
	if t == nil {
		return false
	}
	for err != nil {
		if e, ok := err.(*Error); ok && e != nil && e.Type().descendsFrom(t) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StatusCode returns the HTTP status code carried by the error.
// Returns 0 and false if the error is nil, not an *Error, or was
// constructed from a type without an HTTP facet.
//
// Example:
//
//	if code, ok := therror.StatusCode(err); ok {
//	    w.WriteHeader(code)
//	}
func StatusCode(err error) (int, bool) {
	if e, ok := AsError(err); ok {
		return e.StatusCode()
	}
	return 0, false
}

// LogLevel returns the severity level carried by the error.
// Errors that are not *Error default to LevelError, so foreign errors
// are never silently downgraded.
//
// Example:
//
//	logger.LogAttrs(ctx, therror.LogLevel(err).Slog(), err.Error())
func LogLevel(err error) Level {
	if e, ok := AsError(err); ok {
		return e.Level()
	}
	return LevelError
}

// HasCapability reports whether the error was constructed from a type
// carrying the given capability. Returns false for nil and foreign errors.
//
// Example:
//
//	if therror.HasCapability(err, therror.CapabilityHTTP) {
//	    payload := therror.ToPayload(err)
//	}
func HasCapability(err error, c Capability) bool {
	if e, ok := AsError(err); ok {
		return e.HasCapability(c)
	}
	return false
}

// ToPayload builds the HTTP response payload for any error. Errors that
// are not *Error are treated as internal server errors and produce the
// hidden payload, so details of unexpected failures never reach clients.
// A nil error produces a zero payload.
//
// Example:
//
//	payload := therror.ToPayload(err)
//	json.NewEncoder(w).Encode(payload)
func ToPayload(err error) Payload {
	if err == nil {
		return Payload{}
	}
	if e, ok := AsError(err); ok {
		return e.ToPayload()
	}
	return Payload{
		Error:   hiddenPayloadError,
		Message: hiddenPayloadMessage,
	}
}
