package discovery

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/aalemi-dev/logkit/logpoint"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

type options struct {
	logged      *logpoint.Logged
	scopes      []logpoint.Scope
	scopesSet   bool
	excluded    []string
	names       []string
	keepContext bool
}

// Option customizes the metadata FromFunc and FromMethod produce.
type Option func(*options)

// WithLogged sets the method's own logging configuration.
func WithLogged(l logpoint.Logged) Option {
	return func(o *options) {
		o.logged = &l
	}
}

// WithScopes replaces the derived scope chain. The declaring scope comes
// first.
func WithScopes(scopes ...logpoint.Scope) Option {
	return func(o *options) {
		o.scopes = scopes
		o.scopesSet = true
	}
}

// ParamNames names the parameters in order. Unnamed parameters are called
// arg0, arg1 and so on.
func ParamNames(names ...string) Option {
	return func(o *options) {
		o.names = names
	}
}

// Exclude marks the named parameters as excluded from auto messages.
func Exclude(names ...string) Option {
	return func(o *options) {
		o.excluded = append(o.excluded, names...)
	}
}

// KeepContext stops context.Context parameters from being excluded.
func KeepContext() Option {
	return func(o *options) {
		o.keepContext = true
	}
}

// FromFunc describes the function fn as a method called name. Its scope
// chain is the package fn is declared in, unless WithScopes is given.
//
// Example:
//
//	m, err := discovery.FromFunc("Transfer", bank.Transfer,
//	    discovery.ParamNames("ctx", "from", "to", "amount"),
//	    discovery.WithLogged(logpoint.Logged{Level: logpoint.Info}),
//	)
func FromFunc(name string, fn any, opts ...Option) (*logpoint.Method, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s: %w: %T", name, ErrNotFunc, fn)
	}

	o := applyOptions(opts)
	if !o.scopesSet {
		if pkg := funcPackage(v); pkg != "" {
			o.scopes = []logpoint.Scope{{Name: pkg, Kind: logpoint.PackageScope}}
		}
	}
	return describe(name, v.Type(), 0, o), nil
}

// FromMethod describes the method called name of t. t may be a named type,
// a pointer to one, or an interface type. Methods with pointer receivers are
// found from the value type as well.
//
// The derived scope chain is the type followed by its package.
func FromMethod(t reflect.Type, name string, opts ...Option) (*logpoint.Method, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrMethodNotFound)
	}

	named := t
	if named.Kind() == reflect.Pointer {
		named = named.Elem()
	}

	lookup := t
	method, ok := lookup.MethodByName(name)
	if !ok && t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		lookup = reflect.PointerTo(t)
		method, ok = lookup.MethodByName(name)
	}
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", named.String(), name, ErrMethodNotFound)
	}

	o := applyOptions(opts)
	if !o.scopesSet {
		o.scopes = []logpoint.Scope{{Name: named.String(), Kind: logpoint.TypeScope}}
		if pkg := named.PkgPath(); pkg != "" {
			o.scopes = append(o.scopes, logpoint.Scope{Name: pkg, Kind: logpoint.PackageScope})
		}
	}

	skip := 1
	if lookup.Kind() == reflect.Interface {
		skip = 0
	}
	return describe(name, method.Type, skip, o), nil
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// describe builds the method metadata from a func type, skipping the first
// skip inputs (the receiver). A variadic parameter keeps its slice type.
func describe(name string, ft reflect.Type, skip int, o options) *logpoint.Method {
	m := &logpoint.Method{
		Name:   name,
		Logged: o.logged,
		Scopes: o.scopes,
	}

	for i := skip; i < ft.NumIn(); i++ {
		pos := i - skip
		t := ft.In(i)
		p := logpoint.Parameter{Name: fmt.Sprintf("arg%d", pos), Type: t}
		if pos < len(o.names) && o.names[pos] != "" {
			p.Name = o.names[pos]
		}
		p.Excluded = slices.Contains(o.excluded, p.Name) || (!o.keepContext && t == contextType)
		m.Params = append(m.Params, p)
	}

	for i := 0; i < ft.NumOut(); i++ {
		m.Results = append(m.Results, ft.Out(i))
	}
	return m
}

// funcPackage returns the import path of the package declaring the
// function held by v, or "" when the runtime cannot tell.
func funcPackage(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	full := f.Name()
	slash := strings.LastIndex(full, "/")
	if dot := strings.Index(full[slash+1:], "."); dot >= 0 {
		return full[:slash+1+dot]
	}
	return ""
}
