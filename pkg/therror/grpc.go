package therror

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/therror/therror/pkg/httpstatus"
)

// The status package extracts this interface from errors crossing a gRPC
// boundary.
var _ interface{ GRPCStatus() *status.Status } = (*Error)(nil)

// GRPCStatus returns the gRPC status for this error, satisfying the
// convention recognized by google.golang.org/grpc/status.FromError. The
// code comes from the explicit [GRPC] facet when present, is otherwise
// derived from the HTTP status by the canonical mapping, and falls back to
// codes.Unknown. Server-fault HTTP statuses hide the message the same way
// [Error.ToPayload] does. A nil instance reports codes.OK, matching what
// status.FromError says about a nil error.
func (e *Error) GRPCStatus() *status.Status {
	if e == nil {
		return status.New(codes.OK, "")
	}
	code := e.grpcCode()
	if httpCode, ok := e.StatusCode(); ok && httpstatus.IsServerError(httpCode) {
		return status.New(code, hiddenPayloadMessage)
	}
	return status.New(code, e.Error())
}

func (e *Error) grpcCode() codes.Code {
	if c, ok := e.typ.resolveGRPC(); ok {
		return c
	}
	if httpCode, ok := e.typ.StatusCode(); ok {
		return grpcCodeForHTTP(httpCode)
	}
	return codes.Unknown
}

// grpcCodeForHTTP maps an HTTP status code to its canonical gRPC code.
// Codes without a specific mapping collapse to InvalidArgument for client
// faults and Internal for server faults.
func grpcCodeForHTTP(code int) codes.Code {
	switch code {
	case 400:
		return codes.InvalidArgument
	case 401:
		return codes.Unauthenticated
	case 403:
		return codes.PermissionDenied
	case 404:
		return codes.NotFound
	case 408:
		return codes.DeadlineExceeded
	case 409:
		return codes.AlreadyExists
	case 412:
		return codes.FailedPrecondition
	case 416:
		return codes.OutOfRange
	case 429:
		return codes.ResourceExhausted
	case 501:
		return codes.Unimplemented
	case 503:
		return codes.Unavailable
	case 504:
		return codes.DeadlineExceeded
	}

	switch {
	case httpstatus.IsClientError(code):
		return codes.InvalidArgument
	case httpstatus.IsServerError(code):
		return codes.Internal
	default:
		return codes.Unknown
	}
}
