package logpoint

import "reflect"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Logged is the logging configuration attached to a method or a scope.
type Logged struct {
	// Message is the message template. Empty selects auto mode, where the
	// message is derived from the method name and its parameters.
	Message string `yaml:"message"`

	// Level is the severity. Derived inherits from the enclosing scope.
	Level Level `yaml:"level"`

	// Logger overrides the logger name. Empty means the logger is derived
	// from the method's scope chain.
	Logger string `yaml:"logger"`
}

// Parameter describes one declared parameter of a method.
type Parameter struct {
	Name string

	// Type is the declared type. A nil Type never counts as an error parameter.
	Type reflect.Type

	// Excluded parameters are skipped in auto mode. An explicit template
	// can still reference them by index.
	Excluded bool
}

// ScopeKind distinguishes the containers a method can be declared in.
type ScopeKind int

const (
	// TypeScope is a named type declaring methods.
	TypeScope ScopeKind = iota

	// PackageScope is a package; it only ever appears at the outer end of
	// a scope chain.
	PackageScope
)

func (k ScopeKind) String() string {
	if k == PackageScope {
		return "package"
	}
	return "type"
}

// Scope is one enclosing container of a method.
type Scope struct {
	Name   string
	Kind   ScopeKind
	Logged *Logged
}

// Method is the metadata of an instrumented method as handed over by a
// discovery collaborator. Build never modifies it.
type Method struct {
	Name   string
	Params []Parameter

	// Results are the declared result types. A trailing error result is
	// the failure channel and is not a value worth logging.
	Results []reflect.Type

	// Logged is the method's own configuration; nil behaves like Logged{}.
	Logged *Logged

	// Scopes is the scope chain: the declaring scope first, the
	// outermost scope last.
	Scopes []Scope
}

// Identity returns the key a caller caches the method's plan under: the
// declaring scope's name and the method name joined by a dot.
func (m *Method) Identity() string {
	if len(m.Scopes) == 0 {
		return m.Name
	}
	return m.Scopes[0].Name + "." + m.Name
}

func (m *Method) logged() Logged {
	if m.Logged == nil {
		return Logged{}
	}
	return *m.Logged
}

func isError(t reflect.Type) bool {
	return t != nil && t.Implements(errorType)
}
