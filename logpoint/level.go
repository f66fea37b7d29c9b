package logpoint

import (
	"fmt"
	"strings"
)

// Level is the severity a plan logs at.
//
// The zero value is Derived, which means "inherit from the enclosing scope".
// A resolved plan never carries Derived.
type Level int

const (
	// Derived defers the level decision to the next enclosing scope.
	Derived Level = iota

	// Trace is the most verbose level, below Debug.
	Trace

	// Debug is the level used when no scope configures one.
	Debug

	// Info is for general application progress.
	Info

	// Warn is for conditions that might need attention.
	Warn

	// Error is for failed operations.
	Error
)

// DefaultLevel is the level a plan resolves to when neither the method nor
// any of its enclosing scopes configures one.
const DefaultLevel = Debug

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case Derived:
		return "DERIVED"
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel parses a level name (case-insensitive). The empty string and
// "derived" both parse to Derived.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "derived":
		return Derived, nil
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Derived, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
