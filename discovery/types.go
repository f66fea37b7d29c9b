package discovery

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var builtinTypes = map[string]reflect.Type{
	"bool":            reflect.TypeOf(false),
	"string":          reflect.TypeOf(""),
	"int":             reflect.TypeOf(int(0)),
	"int8":            reflect.TypeOf(int8(0)),
	"int16":           reflect.TypeOf(int16(0)),
	"int32":           reflect.TypeOf(int32(0)),
	"int64":           reflect.TypeOf(int64(0)),
	"uint":            reflect.TypeOf(uint(0)),
	"uint8":           reflect.TypeOf(uint8(0)),
	"uint16":          reflect.TypeOf(uint16(0)),
	"uint32":          reflect.TypeOf(uint32(0)),
	"uint64":          reflect.TypeOf(uint64(0)),
	"uintptr":         reflect.TypeOf(uintptr(0)),
	"float32":         reflect.TypeOf(float32(0)),
	"float64":         reflect.TypeOf(float64(0)),
	"complex64":       reflect.TypeOf(complex64(0)),
	"complex128":      reflect.TypeOf(complex128(0)),
	"byte":            reflect.TypeOf(byte(0)),
	"rune":            reflect.TypeOf(rune(0)),
	"any":             reflect.TypeOf((*any)(nil)).Elem(),
	"interface{}":     reflect.TypeOf((*any)(nil)).Elem(),
	"error":           reflect.TypeOf((*error)(nil)).Elem(),
	"context.Context": contextType,
	"time.Time":       reflect.TypeOf(time.Time{}),
	"time.Duration":   reflect.TypeOf(time.Duration(0)),
}

// parseType resolves a Go type expression such as "[]*time.Time" or
// "map[string]int" against the built-in and registered names.
func parseType(expr string, registered map[string]reflect.Type) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)

	switch {
	case strings.HasPrefix(expr, "*"):
		elem, err := parseType(expr[1:], registered)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil

	case strings.HasPrefix(expr, "[]"):
		elem, err := parseType(expr[2:], registered)
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil

	case strings.HasPrefix(expr, "map["):
		end := matchingBracket(expr, len("map"))
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, expr)
		}
		key, err := parseType(expr[len("map["):end], registered)
		if err != nil {
			return nil, err
		}
		value, err := parseType(expr[end+1:], registered)
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, fmt.Errorf("%w: map key %s is not comparable", ErrUnknownType, key)
		}
		return reflect.MapOf(key, value), nil
	}

	if t, ok := registered[expr]; ok {
		return t, nil
	}
	if t, ok := builtinTypes[expr]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, expr)
}

// matchingBracket returns the index of the ']' closing the '[' at open.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
