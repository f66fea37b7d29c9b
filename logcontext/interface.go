package logcontext

import "context"

// Variable is a contextual value attached to every log record a plan emits,
// such as a trace id or a request-scoped user.
//
// Implementations must be safe for concurrent use.
type Variable interface {
	// Name is the field key the value is logged under.
	Name() string

	// Value returns the value for the current call. ok is false when the
	// variable has nothing to contribute, in which case no field is added.
	Value(ctx context.Context) (value any, ok bool)
}
