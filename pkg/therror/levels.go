package therror

import "log/slog"

// Level identifies the severity a loggable error type reports to the
// logging backend.
//
// The zero value ("") means "not configured"; types without a [Loggable]
// facet resolve to [LevelError].
type Level string

const (
	// LevelDebug marks errors that only matter while diagnosing.
	LevelDebug Level = "debug"

	// LevelInfo marks expected, client-attributable errors. Precreated 4xx
	// types use this level.
	LevelInfo Level = "info"

	// LevelWarn marks errors that succeeded degraded or are likely to
	// escalate.
	LevelWarn Level = "warn"

	// LevelError marks server faults. This is the default level for types
	// without an explicit one, and the level of the precreated 5xx types.
	LevelError Level = "error"

	// LevelFatal marks errors after which the process cannot usefully
	// continue. The library itself never terminates the process; the level
	// only signals intent to the logging backend.
	LevelFatal Level = "fatal"
)

// String returns the string representation of the level.
func (l Level) String() string {
	return string(l)
}

// Valid reports whether the level is one of the recognized severities.
// The zero value ("") is not valid.
func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
		return true
	default:
		return false
	}
}

// Slog maps the level to its log/slog equivalent. Fatal maps above
// [slog.LevelError], following the slog convention of spacing custom levels
// four apart. Unrecognized levels map to [slog.LevelError].
func (l Level) Slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelFatal:
		return slog.LevelError + 4
	default:
		return slog.LevelError
	}
}
