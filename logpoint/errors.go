package logpoint

import "errors"

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

// Diagnostic texts carried by static parameter rules. They end up verbatim
// in the application's log output when a message template is malformed.
const (
	invalidExpressionText = "invalid log parameter expression: "
	invalidIndexText      = "invalid log parameter index: "
)
