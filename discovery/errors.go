package discovery

import "errors"

var (
	// ErrNotFunc is returned when a value that should be a function is not.
	ErrNotFunc = errors.New("not a function")

	// ErrMethodNotFound is returned when a type has no method of the
	// requested name, or a catalog has no method of the requested identity.
	ErrMethodNotFound = errors.New("method not found")

	// ErrUnknownType is returned for a catalog type name that is neither
	// built in nor registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownScope is returned when a catalog entry refers to a scope
	// that is not declared.
	ErrUnknownScope = errors.New("unknown scope")

	// ErrScopeCycle is returned when the enclosing links of catalog scopes
	// loop back on themselves.
	ErrScopeCycle = errors.New("scope cycle")

	// ErrInvalidCatalog is returned for catalogs that cannot be decoded or
	// contain malformed entries.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
