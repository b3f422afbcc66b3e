// Package datatype defines the type-description contract of the columnar
// layer: for every logical value domain, one immutable descriptor that knows
// how to move values between memory (columns), binary form, and the three
// text dialects (raw, escaped, quoted).
//
// Descriptors hold no per-call state and are safe for concurrent use by any
// number of readers. Columns and streams are not; at most one writer and no
// concurrent readers per column/stream during a call.
package datatype

import (
	"bufio"
	"errors"
	"io"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

var (
	// ErrDecode wraps every malformed- or truncated-input failure raised by
	// a deserialize operation. Never recovered silently.
	ErrDecode = errors.New("datatype: malformed or truncated input")

	// ErrNoFixedSize is returned by SizeOfField for variable-size domains.
	// It is a partial-contract answer, not a decode failure; callers pick a
	// fallback estimation strategy.
	ErrNoFixedSize = errors.New("datatype: no fixed per-value size")

	// ErrKindMismatch reports a field passed to a data type of a different
	// domain. Mismatches fail fast instead of encoding garbage.
	ErrKindMismatch = errors.New("datatype: field kind does not match data type")
)

// WriteCallback correlates value positions with byte offsets during a bulk
// binary serialize. It is invoked once before the 0th value is written and
// thereafter each time serialization reaches the index it last returned.
// Returned indexes must be non-decreasing; the callback owner tracks byte
// offsets through its own sink (see iobuf.CountingWriter) and stops the
// correlation once the column is exhausted.
type WriteCallback func() int

// DataType is the closed operation set every concrete type implements.
// Implementations are stateless; Clone returns a value-equivalent instance.
type DataType interface {
	// Name returns the stable type identifier, e.g. "UInt64" or
	// "Array(Nullable(String))". Resolve(Name()) yields an equivalent type.
	Name() string

	// IsNumeric reports whether the domain supports arithmetic ordering
	// and aggregation.
	IsNumeric() bool

	Clone() DataType

	// SerializeBinary writes the exact binary encoding of one field.
	// Decoding the written bytes reproduces the field (lossless).
	SerializeBinary(f field.Field, w io.Writer) error

	// DeserializeBinary consumes exactly one encoded value and returns it.
	// Truncated or malformed input fails with an ErrDecode-wrapped error.
	DeserializeBinary(r *bufio.Reader) (field.Field, error)

	// SerializeBinaryBulk writes every value of col in order, back to back,
	// with no separators. cb may be nil; when given it is invoked per the
	// WriteCallback contract, exactly at value boundaries.
	SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error

	// DeserializeBinaryBulk appends up to limit values to col and returns
	// how many were read. End of stream at a value boundary is not an
	// error; truncation mid-value is.
	DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error)

	// Raw dialect: unescaped, unquoted. Fastest, fewest guarantees.
	SerializeText(f field.Field, w io.Writer) error
	DeserializeText(r *bufio.Reader) (field.Field, error)

	// Escaped dialect: control and delimiter characters escaped, safe to
	// embed in a tab-separated dump.
	SerializeTextEscaped(f field.Field, w io.Writer) error
	DeserializeTextEscaped(r *bufio.Reader) (field.Field, error)

	// Quoted dialect: a literal that can be re-embedded in a query. With
	// compatible set, composite literals (array, tuple) are additionally
	// wrapped in an outer quoted string so systems without composite
	// literal syntax can ingest the dump as a string column.
	SerializeTextQuoted(f field.Field, w io.Writer, compatible bool) error
	DeserializeTextQuoted(r *bufio.Reader, compatible bool) (field.Field, error)

	// CreateColumn returns a new, empty column of this domain.
	CreateColumn() column.Column

	// CreateConstColumn returns a column of length size whose every logical
	// element equals f, at O(1) memory cost.
	CreateConstColumn(size int, f field.Field) (column.Column, error)

	// Default returns the domain's canonical default value.
	Default() field.Field

	// SizeOfField returns the approximate fixed per-value byte footprint,
	// or ErrNoFixedSize for variable-size domains.
	SizeOfField() (int, error)
}

// serializeRows drives a bulk binary write one value at a time, honoring the
// write callback contract: first invocation before row 0, then again each
// time the row it last returned is reached.
func serializeRows(n int, cb WriteCallback, writeRow func(i int) error) error {
	next := 0
	if cb != nil && n > 0 {
		next = cb()
	}
	for i := 0; i < n; i++ {
		if cb != nil && i == next && i > 0 {
			next = cb()
		}
		if err := writeRow(i); err != nil {
			return err
		}
	}
	return nil
}

// deserializeRows reads up to limit values. readRow returns io.EOF only when
// the stream ends cleanly at a value boundary; any other failure aborts.
func deserializeRows(limit int, readRow func() error) (int, error) {
	for i := 0; i < limit; i++ {
		err := readRow()
		if errors.Is(err, io.EOF) {
			return i, nil
		}
		if err != nil {
			return i, err
		}
	}
	return limit, nil
}

// atEOF reports a clean end of stream before the next value starts.
func atEOF(r *bufio.Reader) (bool, error) {
	if _, err := r.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
