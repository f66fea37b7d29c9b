package convert

import (
	"fmt"
	"reflect"
	"time"
)

// Func converts one raw value into its loggable representation.
type Func func(value any) any

type interfaceConverter struct {
	iface reflect.Type
	fn    Func
}

// Registry is the value converter used when executing log plans.
//
// Conversion looks for, in order:
//  1. a converter registered for the value's exact type
//  2. the first converter registered for an interface the value implements
//  3. the built-in defaults (error, fmt.Stringer, []byte, time.Time)
//
// Values nothing applies to are returned unchanged.
//
// A Registry is configured through options at construction and never changes
// afterwards, so it is safe for concurrent use.
type Registry struct {
	byType       map[reflect.Type]Func
	byInterface  []interfaceConverter
	skipDefaults bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithType registers a converter for values of exactly type T. When T is an
// interface type the converter applies to every value implementing it.
func WithType[T any](fn func(T) any) Option {
	t := reflect.TypeOf((*T)(nil)).Elem()
	wrapped := func(v any) any { return fn(v.(T)) }
	return func(r *Registry) {
		if t.Kind() == reflect.Interface {
			r.byInterface = append(r.byInterface, interfaceConverter{iface: t, fn: wrapped})
			return
		}
		r.byType[t] = wrapped
	}
}

// WithoutDefaults disables the built-in converters.
func WithoutDefaults() Option {
	return func(r *Registry) {
		r.skipDefaults = true
	}
}

// NewRegistry creates a Registry from the given options.
//
// Example:
//
//	conv := convert.NewRegistry(
//	    convert.WithType(func(u User) any { return u.ID }),
//	    convert.WithType(func(s fmt.Stringer) any { return "<" + s.String() + ">" }),
//	)
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{byType: make(map[reflect.Type]Func)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Convert implements logpoint.Converter.
func (r *Registry) Convert(value any) any {
	if value == nil {
		return nil
	}

	t := reflect.TypeOf(value)
	if fn, ok := r.byType[t]; ok {
		return fn(value)
	}
	for _, c := range r.byInterface {
		if t.Implements(c.iface) {
			return c.fn(value)
		}
	}
	if r.skipDefaults || isNilPointer(value) {
		return value
	}
	return convertDefault(value)
}

func convertDefault(value any) any {
	switch v := value.(type) {
	case error:
		return v.Error()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	case []byte:
		return fmt.Sprintf("%d bytes", len(v))
	default:
		return value
	}
}

// isNilPointer guards the defaults against typed nils whose methods would
// dereference the receiver.
func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
