package datatype

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrUnknownType = errors.New("datatype: unknown type name")
	ErrBadTypeName = errors.New("datatype: malformed type name")
)

var (
	regMu  sync.RWMutex
	simple = map[string]func() DataType{}
)

// Register binds a factory to a simple (non-parameterized) type name.
// Registering an existing name replaces the previous factory.
func Register(name string, factory func() DataType) {
	regMu.Lock()
	defer regMu.Unlock()
	simple[name] = factory
}

func init() {
	Register("UInt64", func() DataType { return UInt64{} })
	Register("Int64", func() DataType { return Int64{} })
	Register("Float64", func() DataType { return Float64{} })
	Register("String", func() DataType { return String{} })
	Register("UUID", func() DataType { return UUID{} })
}

// Resolve maps a type name back to a DataType instance. Parameterized names
// nest arbitrarily: Array(Nullable(String)), Tuple(UInt64, Array(String)).
// For every type t, Resolve(t.Name()) is value-equivalent to t.
func Resolve(name string) (DataType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrBadTypeName)
	}
	open := strings.IndexByte(name, '(')
	if open < 0 {
		regMu.RLock()
		factory, ok := simple[name]
		regMu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		return factory(), nil
	}
	if !strings.HasSuffix(name, ")") {
		return nil, fmt.Errorf("%w: %q", ErrBadTypeName, name)
	}
	outer := name[:open]
	args := name[open+1 : len(name)-1]
	switch outer {
	case "Nullable":
		inner, err := Resolve(args)
		if err != nil {
			return nil, err
		}
		return NewNullable(inner), nil
	case "Array":
		elem, err := Resolve(args)
		if err != nil {
			return nil, err
		}
		return NewArray(elem), nil
	case "Tuple":
		parts, err := splitTopLevel(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadTypeName, name)
		}
		elems := make([]DataType, len(parts))
		for i, p := range parts {
			e, err := Resolve(p)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return NewTuple(elems...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// MustResolve is Resolve for statically known names; it panics on failure.
func MustResolve(name string) DataType {
	t, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return t
}

// splitTopLevel splits a comma-separated argument list, ignoring commas
// inside nested parentheses. An empty list yields no parts.
func splitTopLevel(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	return append(parts, s[start:]), nil
}
