// Package testutil provides shared test helpers for the therror test suite.
//
// All helpers accept [testing.TB] for compatibility with both tests and
// benchmarks. Functions that halt the test on failure use [require] from
// testify; functions that record failures without stopping use [assert].
//
// Every helper calls t.Helper() so that test failure messages report the
// caller's file and line number rather than this package's.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therror/therror/pkg/therror"
)

// RequireNoError halts the test immediately if err is non-nil.
// Use this for preconditions whose failure makes continuing meaningless.
func RequireNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// RequireError halts the test immediately if err is nil.
// Use this when an error is expected and subsequent assertions depend on it.
func RequireError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

// RequireErrorType halts the test if err is nil, carries no *therror.Error
// in its chain, or does not belong to the expected type. This is the primary
// helper for validating typed error returns.
//
// Example:
//
//	_, err := catalog.LoadFile("absent.yaml")
//	testutil.RequireErrorType(t, err, catalog.UnreadableFile)
func RequireErrorType(t testing.TB, err error, typ *therror.Type, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	e, ok := therror.AsError(err)
	require.True(t, ok, "expected *therror.Error, got %T: %v", err, err)
	require.True(t, therror.HasType(err, typ),
		"error type mismatch: got %q, want %q (message: %s)",
		e.Name(), typ.Name(), e.Message())
}

// AssertErrorType records a test failure (without halting) if err is nil,
// carries no *therror.Error, or does not belong to the expected type.
// Use this in table-driven tests where you want to check all rows.
func AssertErrorType(t testing.TB, err error, typ *therror.Type, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	e, ok := therror.AsError(err)
	if !assert.True(t, ok, "expected *therror.Error, got %T: %v", err, err) {
		return false
	}
	return assert.True(t, therror.HasType(err, typ),
		"error type mismatch: got %q, want %q (message: %s)",
		e.Name(), typ.Name(), e.Message())
}

// AssertNoTherror records a test failure if err is non-nil and is a
// *therror.Error, printing the identity and message for diagnostics.
func AssertNoTherror(t testing.TB, err error) bool {
	t.Helper()
	if err == nil {
		return true
	}
	if e, ok := therror.AsError(err); ok {
		return assert.Fail(t,
			"unexpected therror.Error",
			"name=%s message=%s", e.Name(), e.Message())
	}
	return assert.NoError(t, err)
}

// RequireStatusCode halts the test if err carries no HTTP status code or
// carries a different one.
func RequireStatusCode(t testing.TB, err error, want int, msgAndArgs ...any) {
	t.Helper()
	code, ok := therror.StatusCode(err)
	require.True(t, ok, "error carries no HTTP status code: %v", err)
	require.Equal(t, want, code, msgAndArgs...)
}

// TempCatalogFile creates a temporary file with the given content and
// extension (e.g., ".yaml", ".json") inside t.TempDir(). The file is
// automatically cleaned up when the test finishes.
//
// The file is created with mode 0600 (owner read/write only) following
// the principle of least privilege.
func TempCatalogFile(t testing.TB, content, ext string) string {
	t.Helper()
	dir := t.TempDir()
	name := "catalog" + ext
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp catalog file %s", path)
	return path
}

// TempFile creates a temporary file with the given name and content
// inside t.TempDir(). The file is automatically cleaned up when the
// test finishes.
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp file %s", path)
	return path
}

// AssertJSONContains marshals v to JSON and asserts that the resulting
// JSON string contains the expected substring. Useful for verifying
// that specific fields appear in serialized output.
func AssertJSONContains(t testing.TB, v any, expected string) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "json.Marshal failed")
	assert.Contains(t, string(data), expected,
		"expected JSON to contain %q, got: %s", expected, string(data))
}

// AssertJSONNotContains marshals v to JSON and asserts that the
// resulting JSON string does not contain the unexpected substring.
// Useful for verifying that server-fault details are hidden.
func AssertJSONNotContains(t testing.TB, v any, unexpected string) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "json.Marshal failed")
	assert.NotContains(t, string(data), unexpected,
		"expected JSON to NOT contain %q, got: %s", unexpected, string(data))
}
