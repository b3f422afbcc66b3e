package datatype

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// Tuple composes a fixed sequence of element types. Binary form is the
// element encodings back to back with no framing of its own. Text form is a
// parenthesized literal with elements in the quoted dialect, e.g. (1,'a').
type Tuple struct {
	elems []DataType
}

func NewTuple(elems ...DataType) Tuple {
	return Tuple{elems: append([]DataType(nil), elems...)}
}

// Elements returns the element types. Callers must not mutate the slice.
func (t Tuple) Elements() []DataType { return t.elems }

func (t Tuple) Name() string {
	names := make([]string, len(t.elems))
	for i, e := range t.elems {
		names[i] = e.Name()
	}
	return "Tuple(" + strings.Join(names, ", ") + ")"
}

func (t Tuple) IsNumeric() bool { return false }

func (t Tuple) Clone() DataType {
	elems := make([]DataType, len(t.elems))
	for i, e := range t.elems {
		elems[i] = e.Clone()
	}
	return Tuple{elems: elems}
}

func (t Tuple) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindTuple || len(f.Items()) != len(t.elems) {
		return ErrKindMismatch
	}
	for i, it := range f.Items() {
		if err := t.elems[i].SerializeBinary(it, w); err != nil {
			return err
		}
	}
	return nil
}

func (t Tuple) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	items := make([]field.Field, len(t.elems))
	for i, e := range t.elems {
		it, err := e.DeserializeBinary(r)
		if err != nil {
			return field.Null, err
		}
		items[i] = it
	}
	return field.NewTuple(items...), nil
}

func (t Tuple) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (t Tuple) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	return deserializeRows(limit, func() error {
		if done, err := atEOF(r); done || err != nil {
			if done {
				return io.EOF
			}
			return err
		}
		f, err := t.DeserializeBinary(r)
		if err != nil {
			return err
		}
		return col.Append(f)
	})
}

func (t Tuple) writeLiteral(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindTuple || len(f.Items()) != len(t.elems) {
		return ErrKindMismatch
	}
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	for i, it := range f.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := t.elems[i].SerializeTextQuoted(it, w, false); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

func (t Tuple) readLiteral(r *bufio.Reader) (field.Field, error) {
	if err := expectByte(r, '('); err != nil {
		return field.Null, err
	}
	items := make([]field.Field, len(t.elems))
	for i, e := range t.elems {
		if i > 0 {
			if err := expectByte(r, ','); err != nil {
				return field.Null, err
			}
		}
		if err := skipSpaces(r); err != nil {
			return field.Null, err
		}
		it, err := e.DeserializeTextQuoted(r, false)
		if err != nil {
			return field.Null, err
		}
		items[i] = it
		if err := skipSpaces(r); err != nil {
			return field.Null, err
		}
	}
	if err := expectByte(r, ')'); err != nil {
		return field.Null, err
	}
	return field.NewTuple(items...), nil
}

func (t Tuple) SerializeText(f field.Field, w io.Writer) error {
	return t.writeLiteral(f, w)
}

func (t Tuple) DeserializeText(r *bufio.Reader) (field.Field, error) {
	return t.readLiteral(r)
}

func (t Tuple) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.writeLiteral(f, w)
}

func (t Tuple) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.readLiteral(r)
}

func (t Tuple) SerializeTextQuoted(f field.Field, w io.Writer, compatible bool) error {
	if !compatible {
		return t.writeLiteral(f, w)
	}
	var buf bytes.Buffer
	if err := t.writeLiteral(f, &buf); err != nil {
		return err
	}
	return writeQuoted(w, buf.String())
}

func (t Tuple) DeserializeTextQuoted(r *bufio.Reader, compatible bool) (field.Field, error) {
	if !compatible {
		return t.readLiteral(r)
	}
	s, err := readQuoted(r)
	if err != nil {
		return field.Null, err
	}
	inner := bufio.NewReader(strings.NewReader(s))
	f, err := t.readLiteral(inner)
	if err != nil {
		return field.Null, err
	}
	if _, err := inner.Peek(1); !errors.Is(err, io.EOF) {
		return field.Null, decodeErrf("trailing bytes after Tuple literal")
	}
	return f, nil
}

func (t Tuple) CreateColumn() column.Column {
	cols := make([]column.Column, len(t.elems))
	for i, e := range t.elems {
		cols[i] = e.CreateColumn()
	}
	return column.NewTuple(cols...)
}

func (t Tuple) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindTuple || len(f.Items()) != len(t.elems) {
		return nil, ErrKindMismatch
	}
	for i, it := range f.Items() {
		if _, err := t.elems[i].CreateConstColumn(0, it); err != nil {
			return nil, err
		}
	}
	return column.NewConst(size, f), nil
}

func (t Tuple) Default() field.Field {
	items := make([]field.Field, len(t.elems))
	for i, e := range t.elems {
		items[i] = e.Default()
	}
	return field.NewTuple(items...)
}

func (t Tuple) SizeOfField() (int, error) {
	total := 0
	for _, e := range t.elems {
		n, err := e.SizeOfField()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrNoFixedSize, t.Name())
		}
		total += n
	}
	return total, nil
}
