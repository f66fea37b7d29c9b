package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/logkit/logpoint"
)

// Catalog is a set of method descriptions loaded from YAML.
//
// A catalog file declares scopes, linked to their enclosing scope by name,
// and methods declared in one of those scopes:
//
//	scopes:
//	  - name: orders
//	    kind: package
//	    logged: {level: warn}
//	  - name: orders.Service
//	    enclosing: orders
//	methods:
//	  - name: PlaceOrder
//	    scope: orders.Service
//	    logged: {message: "placing {2} x{1}", level: info}
//	    params:
//	      - {name: ctx, type: context.Context, excluded: true}
//	      - {name: qty, type: int}
//	      - {name: sku, type: string}
//	    results: [int, error]
type Catalog struct {
	methods []*logpoint.Method
	index   map[string]*logpoint.Method
}

type catalogFile struct {
	Scopes  []scopeEntry  `yaml:"scopes"`
	Methods []methodEntry `yaml:"methods"`
}

type scopeEntry struct {
	Name      string           `yaml:"name"`
	Kind      string           `yaml:"kind"`
	Enclosing string           `yaml:"enclosing"`
	Logged    *logpoint.Logged `yaml:"logged"`
}

type methodEntry struct {
	Name    string           `yaml:"name"`
	Scope   string           `yaml:"scope"`
	Logged  *logpoint.Logged `yaml:"logged"`
	Params  []paramEntry     `yaml:"params"`
	Results []string         `yaml:"results"`
}

type paramEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Excluded bool   `yaml:"excluded"`
}

// CatalogOption customizes catalog loading.
type CatalogOption func(*catalogLoader)

// RegisterType makes t available to catalog entries under name, for example
// RegisterType("orders.SKU", reflect.TypeOf(orders.SKU{})).
func RegisterType(name string, t reflect.Type) CatalogOption {
	return func(l *catalogLoader) {
		l.types[name] = t
	}
}

type catalogLoader struct {
	types  map[string]reflect.Type
	scopes map[string]scopeEntry
	chains map[string][]logpoint.Scope
}

// LoadCatalogFile reads a catalog from the YAML file at path.
func LoadCatalogFile(path string, opts ...CatalogOption) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadCatalog reads a catalog from r. Unknown keys, unknown type names,
// undeclared scopes and cyclic enclosing links are rejected.
func LoadCatalog(r io.Reader, opts ...CatalogOption) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	l := &catalogLoader{
		types:  make(map[string]reflect.Type),
		scopes: make(map[string]scopeEntry, len(file.Scopes)),
		chains: make(map[string][]logpoint.Scope, len(file.Scopes)),
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, s := range file.Scopes {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scope without name", ErrInvalidCatalog)
		}
		if _, dup := l.scopes[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate scope %q", ErrInvalidCatalog, s.Name)
		}
		if _, err := scopeKind(s.Kind); err != nil {
			return nil, fmt.Errorf("scope %q: %w", s.Name, err)
		}
		l.scopes[s.Name] = s
	}

	c := &Catalog{index: make(map[string]*logpoint.Method, len(file.Methods))}
	for _, entry := range file.Methods {
		m, err := l.method(entry)
		if err != nil {
			return nil, err
		}
		id := m.Identity()
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate method %q", ErrInvalidCatalog, id)
		}
		c.index[id] = m
		c.methods = append(c.methods, m)
	}
	return c, nil
}

func (l *catalogLoader) method(e methodEntry) (*logpoint.Method, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("%w: method without name", ErrInvalidCatalog)
	}

	m := &logpoint.Method{Name: e.Name, Logged: e.Logged}
	if e.Scope != "" {
		chain, err := l.chain(e.Scope)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", e.Name, err)
		}
		m.Scopes = chain
	}

	for i, p := range e.Params {
		t, err := parseType(p.Type, l.types)
		if err != nil {
			return nil, fmt.Errorf("method %s: param %d: %w", e.Name, i, err)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		m.Params = append(m.Params, logpoint.Parameter{Name: name, Type: t, Excluded: p.Excluded})
	}

	for i, expr := range e.Results {
		t, err := parseType(expr, l.types)
		if err != nil {
			return nil, fmt.Errorf("method %s: result %d: %w", e.Name, i, err)
		}
		m.Results = append(m.Results, t)
	}
	return m, nil
}

// chain returns the scope chain starting at name, innermost first.
func (l *catalogLoader) chain(name string) ([]logpoint.Scope, error) {
	if chain, ok := l.chains[name]; ok {
		return chain, nil
	}

	var chain []logpoint.Scope
	seen := make(map[string]bool)
	for cur := name; cur != ""; {
		if seen[cur] {
			return nil, fmt.Errorf("%w: %s", ErrScopeCycle, cur)
		}
		seen[cur] = true

		s, ok := l.scopes[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScope, cur)
		}
		kind, _ := scopeKind(s.Kind)
		chain = append(chain, logpoint.Scope{Name: s.Name, Kind: kind, Logged: s.Logged})
		cur = s.Enclosing
	}

	l.chains[name] = chain
	return chain, nil
}

func scopeKind(s string) (logpoint.ScopeKind, error) {
	switch s {
	case "", "type":
		return logpoint.TypeScope, nil
	case "package":
		return logpoint.PackageScope, nil
	}
	return 0, fmt.Errorf("%w: scope kind %q", ErrInvalidCatalog, s)
}

// Methods returns the catalog's methods in file order.
func (c *Catalog) Methods() []*logpoint.Method {
	out := make([]*logpoint.Method, len(c.methods))
	copy(out, c.methods)
	return out
}

// Lookup returns the method with the given identity, such as
// "orders.Service.PlaceOrder".
func (c *Catalog) Lookup(identity string) (*logpoint.Method, error) {
	m, ok := c.index[identity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, identity)
	}
	return m, nil
}

// Len is the number of methods in the catalog.
func (c *Catalog) Len() int {
	return len(c.methods)
}
