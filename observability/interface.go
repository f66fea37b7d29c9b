package observability

import "time"

// Observer receives an OperationContext for every completed operation of
// the component it is attached to. Components work without one.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component identifies the reporting package, e.g. "logkit".
	Component string

	// Operation is what was done, e.g. "build" or "invoke".
	Operation string

	// Resource is the primary resource, the logger name for log plans.
	Resource string

	// SubResource narrows Resource, the method identity for log plans.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error the operation ended with; nil on success.
	Error error

	// Size is the number of items involved, such as rendered values.
	Size int64

	// Metadata carries operation-specific details.
	// Example: {"level": "INFO", "diagnostics": 1}
	Metadata map[string]interface{}
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// Multi returns an Observer that forwards every operation to each non-nil
// observer in order. It returns a NoOpObserver when none remain.
func Multi(observers ...Observer) Observer {
	list := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	switch len(list) {
	case 0:
		return NewNoOpObserver()
	case 1:
		return list[0]
	}
	return multiObserver(list)
}

type multiObserver []Observer

func (m multiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}
