// Package column provides the bulk value containers the codec layer reads
// and writes. A column is an ordered, mutable sequence of values of one
// domain. Columns are not safe for concurrent use; callers synchronize.
package column

import (
	"errors"

	"github.com/trinhvc/colstore/internal/field"
)

var (
	ErrKindMismatch = errors.New("column: field kind does not match column domain")
	ErrConstValue   = errors.New("column: const column only grows by its stored value")
)

type Column interface {
	// Len returns the number of logical values.
	Len() int

	// At returns the i-th value as a Field. Panics if i is out of range,
	// like slice indexing.
	At(i int) field.Field

	// Append adds one value to the end. Fails with ErrKindMismatch when the
	// field does not belong to the column's domain; a failed append leaves
	// the column unchanged.
	Append(f field.Field) error

	// Truncate shortens the column to n values. n must be between 0 and
	// Len; growing is not supported.
	Truncate(n int)

	// Reserve grows the underlying storage so that n more values can be
	// appended without reallocation. Advisory; composite columns may only
	// pass it through partially.
	Reserve(n int)
}
