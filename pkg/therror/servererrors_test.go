package therror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therror/therror/pkg/httpstatus"
)

func TestPrecreated_Identity(t *testing.T) {
	t.Parallel()
	err := NotFound.New()

	assert.Equal(t, "NotFound", err.Name())
	assert.Equal(t, "NotFound: Not Found", err.Error())
}

func TestPrecreated_Levels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, LevelInfo, NotFound.Level(), "client faults log at info")
	assert.Equal(t, LevelInfo, ImATeapot.Level())
	assert.Equal(t, LevelError, InternalServerError.Level(), "server faults log at error")
	assert.Equal(t, LevelError, ServiceUnavailable.Level())
}

func TestPrecreated_AllRegisteredCodes(t *testing.T) {
	t.Parallel()
	for _, s := range httpstatus.All() {
		typ, ok := ForStatus(s.Code)
		require.True(t, ok, "status %d should have a precreated type", s.Code)
		assert.Equal(t, s.Identifier, typ.Name(), "status %d", s.Code)

		code, hasCode := typ.StatusCode()
		require.True(t, hasCode, "status %d", s.Code)
		assert.Equal(t, s.Code, code)

		want := LevelError
		if httpstatus.IsClientError(s.Code) {
			want = LevelInfo
		}
		assert.Equal(t, want, typ.Level(), "status %d", s.Code)

		assert.Equal(t, s.Phrase, typ.New().Message(), "status %d defaults to its reason phrase", s.Code)
	}
}

func TestPrecreated_Capabilities(t *testing.T) {
	t.Parallel()
	for _, c := range []Capability{CapabilityNotify, CapabilityLoggable, CapabilityHTTP} {
		assert.True(t, NotFound.HasCapability(c), "precreated types should carry %s", c)
	}
}

func TestPrecreated_LegacyPhrases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		typ  *Type
		want string
	}{
		{RequestEntityTooLarge, "Request Entity Too Large"},
		{RequestURITooLarge, "Request-URI Too Large"},
		{RequestedRangeNotSatisfiable, "Requested Range Not Satisfiable"},
		{ImATeapot, "I'm a teapot"},
		{UnorderedCollection, "Unordered Collection"},
		{BandwidthLimitExceeded, "Bandwidth Limit Exceeded"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.typ.New().Message())
	}
}

func TestForStatus_Unregistered(t *testing.T) {
	t.Parallel()
	typ, ok := ForStatus(999)

	assert.False(t, ok)
	assert.Equal(t, InternalServerError, typ, "unregistered codes fall back to InternalServerError")
}

func TestPrecreated_Subtype(t *testing.T) {
	t.Parallel()
	Not404 := Define("Not404", NotFound)
	err := Not404.New()

	payload := err.ToPayload()
	assert.Equal(t, "Not404", payload.Error)
	assert.Equal(t, "Not Found", payload.Message)
	assert.True(t, HasType(err, NotFound), "subtypes stay members of the precreated type")
}

func TestPrecreated_ServerFaultPayload(t *testing.T) {
	t.Parallel()
	err := ServiceUnavailable.New("db down")

	payload := err.ToPayload()
	assert.Equal(t, "InternalServerError", payload.Error)
	assert.Equal(t, "An internal server error occurred", payload.Message)
	assert.Equal(t, "db down", err.Message(), "the descriptive message survives for logging")
}
