package therror

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoArguments(t *testing.T) {
	t.Parallel()
	err := New()

	assert.Equal(t, "Therror", err.Name())
	assert.Equal(t, "Unknown error", err.Message())
	assert.Nil(t, err.Cause(), "New().Cause should be nil")
	assert.Empty(t, err.Properties(), "New().Properties should be empty")
}

func TestNew_Message(t *testing.T) {
	t.Parallel()
	err := New("boom")

	assert.Equal(t, "boom", err.Message())
	assert.Equal(t, "Therror: boom", err.Error())
}

func TestNew_MessageAndProperties(t *testing.T) {
	t.Parallel()
	err := New("Hi ${name}", map[string]any{"name": "Ana"})

	assert.Equal(t, "Hi Ana", err.Message())
	v, ok := err.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Ana", v)
}

func TestNew_MultipleMapsMergeLastWins(t *testing.T) {
	t.Parallel()
	err := New("msg",
		map[string]any{"a": 1, "b": 1},
		map[string]any{"b": 2, "c": 3},
	)

	props := err.Properties()
	assert.Equal(t, 1, props["a"])
	assert.Equal(t, 2, props["b"], "later map should win on key collision")
	assert.Equal(t, 3, props["c"])
}

func TestNew_PositionalProperties(t *testing.T) {
	t.Parallel()
	err := New("msg", "extra", map[string]any{"k": "v"}, 42)

	v, ok := err.Get("0")
	require.True(t, ok, "non-map entry should be stored under its position")
	assert.Equal(t, "extra", v)

	v, ok = err.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	v, ok = err.Get("2")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestNew_CauseOnly(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := New(cause)

	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, "connection refused", err.Message(), "message should fall back to the cause's message")
}

func TestNew_CauseMessageAndProperties(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := New(cause, "loading ${id}", map[string]any{"id": 42})

	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, "loading 42", err.Message())
}

func TestNew_NonErrorCause(t *testing.T) {
	t.Parallel()
	// A first argument followed by a string message is a cause even when it
	// is not an error value.
	err := New("upstream said no", "request rejected")

	assert.Equal(t, "request rejected", err.Message())
	require.NotNil(t, err.Cause())

	ve, ok := err.Cause().(*valueError)
	require.True(t, ok, "non-error cause should be adapted, preserving the value")
	assert.Equal(t, "upstream said no", ve.Value())
	assert.Equal(t, "upstream said no", ve.Error())
}

func TestNew_PropertiesWithMessageKey(t *testing.T) {
	t.Parallel()
	err := New(map[string]any{"message": "Hi ${name}", "name": "Ana"})

	assert.Equal(t, "Hi Ana", err.Message())
	_, ok := err.Get("message")
	assert.False(t, ok, "the message key should never be retained as a property")
	assert.Equal(t, []string{"name"}, err.Keys())
}

func TestNew_MessageKeyFromFirstMap(t *testing.T) {
	t.Parallel()
	err := New(
		map[string]any{"message": "first"},
		map[string]any{"message": "second", "k": 1},
	)

	assert.Equal(t, "first", err.Message(), "the template comes from the first map")
	_, ok := err.Get("message")
	assert.False(t, ok)
	v, ok := err.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNew_NonStringFirstArgument(t *testing.T) {
	t.Parallel()
	// Primitives and self-describing values are stringified into the
	// message; aggregates have no usable string form and fall back.
	for _, tc := range []struct {
		arg  any
		want string
	}{
		{42, "42"},
		{3.5, "3.5"},
		{true, "true"},
		{2 * time.Second, "2s"},
		{struct{ n int }{404}, "Unknown error"},
		{[]int{1, 2}, "Unknown error"},
		{map[int]string{1: "one"}, "Unknown error"},
	} {
		assert.Equal(t, tc.want, New(tc.arg).Message(), "arg %#v", tc.arg)
	}
}

func TestNew_ObjectArgumentKeepsFallbackChain(t *testing.T) {
	t.Parallel()
	// An aggregate first argument must not leak a reflective dump like
	// "{404}" into the message; the usual fallback chain applies instead.
	plain := New(struct{ n int }{404})
	assert.Equal(t, "Unknown error", plain.Message())
	assert.Empty(t, plain.Properties())

	typ := Define("DataError", WithMessage("type default"))
	assert.Equal(t, "type default", typ.New(struct{ n int }{404}).Message())

	wrapped := Wrap(errors.New("boom"), struct{ n int }{404})
	assert.Equal(t, "boom", wrapped.Message(), "the cause message should win over an unusable argument")
}

func TestNew_ArgumentsAfterNonStringIgnored(t *testing.T) {
	t.Parallel()
	err := New(42, map[string]any{"dropped": true}, "also dropped")

	assert.Equal(t, "42", err.Message())
	assert.Empty(t, err.Properties(), "everything after a stringified first value is ignored")
}

func TestNew_NilArguments(t *testing.T) {
	t.Parallel()
	err := New(nil, nil)

	assert.Equal(t, "Unknown error", err.Message())
	assert.Nil(t, err.Cause(), "nil arguments should contribute nothing")
}

func TestNew_TypedNilCause(t *testing.T) {
	t.Parallel()
	// A nil *Error boxed in the error interface compares non-nil; it must
	// still count as nil, never be adopted as a cause and dereferenced.
	err := New((*Error)(nil))

	assert.Nil(t, err.Cause())
	assert.Equal(t, "Unknown error", err.Message())

	err = New((*Error)(nil), "boom")

	assert.Nil(t, err.Cause(), "a typed nil in the cause position contributes nothing")
	assert.Equal(t, "boom", err.Message())
}

func TestNew_NilThenMessage(t *testing.T) {
	t.Parallel()
	err := New(nil, "boom")

	assert.Equal(t, "boom", err.Message())
	assert.Nil(t, err.Cause())
}

func TestNewf(t *testing.T) {
	t.Parallel()
	err := Newf("user %q not found in %s", "user-123", "default")

	assert.Equal(t, `user "user-123" not found in default`, err.Message())
}

func TestNewf_KeepsTemplatePlaceholders(t *testing.T) {
	t.Parallel()
	// Newf formats once; the result is installed as the template, so ${}
	// placeholders still render against properties.
	err := Newf("count %d of ${total}", 3)
	err.Set("total", 10)

	assert.Equal(t, "count 3 of 10", err.Message())
}

func TestWrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to connect")

	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, "failed to connect", err.Message())
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Wrap(nil, "should not create error"), "Wrap(nil, ...) should return nil")
	assert.Nil(t, Wrap((*Error)(nil), "should not create error"), "a typed nil cause is still a nil cause")
}

func TestWrap_NoMessage(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	err := Wrap(cause)

	assert.Equal(t, "disk full", err.Message())
}

func TestWrap_PropertiesOnly(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	err := Wrap(cause, map[string]any{"path": "/var/data"})

	assert.Equal(t, "disk full", err.Message())
	v, ok := err.Get("path")
	require.True(t, ok)
	assert.Equal(t, "/var/data", v)
}

func TestWrapf(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := Wrapf(cause, "failed to connect to %s:%d", "localhost", 5432)

	assert.Equal(t, "failed to connect to localhost:5432", err.Message())
	assert.Equal(t, cause, err.Cause(), "Wrapf should preserve cause")
}

func TestWrapf_NilError(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Wrapf(nil, "should not create error: %v", "ignored"), "Wrapf(nil, ...) should return nil")
	assert.Nil(t, Wrapf((*Error)(nil), "should not create error: %v", "ignored"))
}

func TestTypeNew_DefaultTemplate(t *testing.T) {
	t.Parallel()
	typ := Define("DataError", WithMessage("while processing ${source}"))
	err := typ.New(map[string]any{"source": "feed"})

	assert.Equal(t, "while processing feed", err.Message())
}

func TestTypeNew_ExplicitBeatsTypeDefault(t *testing.T) {
	t.Parallel()
	typ := Define("DataError", WithMessage("type default"))
	err := typ.New("explicit wins")

	assert.Equal(t, "explicit wins", err.Message())
}

func TestTypeWrap_TypeDefaultBeatsCauseMessage(t *testing.T) {
	t.Parallel()
	typ := Define("DataError", WithMessage("type default"))
	err := typ.Wrap(errors.New("cause message"))

	assert.Equal(t, "type default", err.Message(), "a type default should win over the cause's message")
}

func TestTypeNew_PresetProperties(t *testing.T) {
	t.Parallel()
	typ := Define("DataError", WithProperties(map[string]any{"component": "ingest", "retries": 0}))
	err := typ.New("boom", map[string]any{"retries": 3})

	props := err.Properties()
	assert.Equal(t, "ingest", props["component"])
	assert.Equal(t, 3, props["retries"], "constructor properties should override presets")
}

func TestNew_CapturesCallerStack(t *testing.T) {
	t.Parallel()
	err := New("boom")

	frames := err.StackTrace()
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].Function, "TestNew_CapturesCallerStack",
		"the first frame should be the constructor's caller")
}

func TestTypeWrap_NilCause(t *testing.T) {
	t.Parallel()
	typ := Define("DataError")

	assert.Nil(t, typ.Wrap(nil, "ignored"))
	assert.Nil(t, typ.Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, typ.Wrap((*Error)(nil), "ignored"), "a typed nil cause is still a nil cause")
	assert.Nil(t, typ.Wrapf((*Error)(nil), "ignored %d", 1))
}

func TestTypeConstructors_CaptureCallerStack(t *testing.T) {
	t.Parallel()
	typ := Define("StackCheck")

	for name, err := range map[string]*Error{
		"New":   typ.New("boom"),
		"Newf":  typ.Newf("boom %d", 1),
		"Wrap":  typ.Wrap(errors.New("cause")),
		"Wrapf": typ.Wrapf(errors.New("cause"), "boom %d", 2),
	} {
		frames := err.StackTrace()
		require.NotEmpty(t, frames, "%s should capture a stack", name)
		assert.Contains(t, frames[0].Function, "TestTypeConstructors_CaptureCallerStack",
			"%s: the first frame should be the constructor's caller", name)
	}
}

func TestConstructionNeverFails(t *testing.T) {
	t.Parallel()
	// Degenerate inputs must degrade to defaults, not panic.
	for _, tc := range []struct {
		args []any
		want string
	}{
		{args: nil, want: "Unknown error"},
		{args: []any{nil}, want: "Unknown error"},
		{args: []any{nil, nil, nil}, want: "Unknown error"},
		{args: []any{map[string]any(nil)}, want: "Unknown error"},
		{args: []any{struct{ x int }{1}}, want: "Unknown error"},
		{args: []any{[]string{"a"}, map[string]any{"k": "v"}}, want: "Unknown error"},
		{args: []any{(*Error)(nil)}, want: "Unknown error"},
		{args: []any{(*Error)(nil), map[string]any{"k": "v"}}, want: "Unknown error"},
		{args: []any{map[string]any{"message": nil}}, want: "Unknown error"},
	} {
		assert.NotPanics(t, func() {
			err := New(tc.args...)
			assert.Equal(t, tc.want, err.Message(), "args %v", tc.args)
			_ = err.Error()
			_ = err.DisplayString()
		})
	}

	// Wrapping a typed nil yields no error, and the nil result still
	// serializes inertly instead of dereferencing itself.
	assert.NotPanics(t, func() {
		wrapped := Wrap((*Error)(nil), "wrapped")
		assert.Nil(t, wrapped)
		assert.Empty(t, wrapped.DisplayString())
	})
}
