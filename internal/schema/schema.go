// Package schema binds column names to data types for multi-column
// operations such as tab-separated dumps.
package schema

import (
	"strings"

	"github.com/trinhvc/colstore/internal/datatype"
)

type Column struct {
	Name string
	Type datatype.DataType
}

type Schema struct {
	Cols []Column
}

func (s Schema) NumCols() int { return len(s.Cols) }

// ColumnIndex returns the position of the named column, or -1.
func (s Schema) ColumnIndex(name string) int {
	for i, c := range s.Cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// String renders "name Type, name Type" for logs and errors.
func (s Schema) String() string {
	parts := make([]string, len(s.Cols))
	for i, c := range s.Cols {
		parts[i] = c.Name + " " + c.Type.Name()
	}
	return strings.Join(parts, ", ")
}

// Parse builds a Schema from a "name Type, name Type" description, resolving
// type names through the registry.
func Parse(desc string) (Schema, error) {
	var s Schema
	for _, part := range splitCols(desc) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, typeName, ok := strings.Cut(part, " ")
		if !ok {
			return Schema{}, &ParseError{Part: part}
		}
		t, err := datatype.Resolve(typeName)
		if err != nil {
			return Schema{}, err
		}
		s.Cols = append(s.Cols, Column{Name: name, Type: t})
	}
	return s, nil
}

// splitCols splits on commas outside parentheses so parameterized type
// names survive, e.g. "pair Tuple(UInt64, String)".
func splitCols(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

type ParseError struct {
	Part string
}

func (e *ParseError) Error() string {
	return "schema: expected \"name Type\", found " + e.Part
}
