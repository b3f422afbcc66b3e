package datatype

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// Nullable decorates an inner type. Binary form prefixes every value with a
// null flag byte (1 = null, value omitted). Text forms use NULL in the raw
// and quoted dialects and \N in the escaped dialect.
//
// Known raw-dialect ambiguity: Nullable(String) cannot distinguish a null
// from the literal string "NULL" when reading raw text. The escaped and
// quoted dialects are unambiguous.
type Nullable struct {
	inner DataType
}

func NewNullable(inner DataType) Nullable { return Nullable{inner: inner} }

// Inner returns the wrapped type.
func (t Nullable) Inner() DataType { return t.inner }

func (t Nullable) Name() string { return "Nullable(" + t.inner.Name() + ")" }
func (t Nullable) IsNumeric() bool { return t.inner.IsNumeric() }
func (t Nullable) Clone() DataType { return Nullable{inner: t.inner.Clone()} }

func (t Nullable) SerializeBinary(f field.Field, w io.Writer) error {
	if f.IsNull() {
		_, err := w.Write([]byte{1})
		return err
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	return t.inner.SerializeBinary(f, w)
}

func (t Nullable) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	flag, err := r.ReadByte()
	if err != nil {
		return field.Null, decodeErrf("reading null flag: %v", err)
	}
	switch flag {
	case 1:
		return field.Null, nil
	case 0:
		return t.inner.DeserializeBinary(r)
	default:
		return field.Null, decodeErrf("invalid null flag %d", flag)
	}
}

func (t Nullable) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (t Nullable) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	return deserializeRows(limit, func() error {
		flag, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		if err != nil {
			return decodeErrf("reading null flag: %v", err)
		}
		switch flag {
		case 1:
			return col.Append(field.Null)
		case 0:
			f, err := t.inner.DeserializeBinary(r)
			if err != nil {
				return err
			}
			return col.Append(f)
		default:
			return decodeErrf("invalid null flag %d", flag)
		}
	})
}

func (t Nullable) SerializeText(f field.Field, w io.Writer) error {
	if f.IsNull() {
		_, err := io.WriteString(w, "NULL")
		return err
	}
	return t.inner.SerializeText(f, w)
}

func (t Nullable) DeserializeText(r *bufio.Reader) (field.Field, error) {
	null, err := tryReadToken(r, "NULL")
	if err != nil {
		return field.Null, err
	}
	if null {
		return field.Null, nil
	}
	return t.inner.DeserializeText(r)
}

func (t Nullable) SerializeTextEscaped(f field.Field, w io.Writer) error {
	if f.IsNull() {
		_, err := io.WriteString(w, `\N`)
		return err
	}
	return t.inner.SerializeTextEscaped(f, w)
}

func (t Nullable) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	null, err := tryReadToken(r, `\N`)
	if err != nil {
		return field.Null, err
	}
	if null {
		return field.Null, nil
	}
	return t.inner.DeserializeTextEscaped(r)
}

func (t Nullable) SerializeTextQuoted(f field.Field, w io.Writer, compatible bool) error {
	if f.IsNull() {
		_, err := io.WriteString(w, "NULL")
		return err
	}
	return t.inner.SerializeTextQuoted(f, w, compatible)
}

func (t Nullable) DeserializeTextQuoted(r *bufio.Reader, compatible bool) (field.Field, error) {
	null, err := tryReadToken(r, "NULL")
	if err != nil {
		return field.Null, err
	}
	if null {
		return field.Null, nil
	}
	return t.inner.DeserializeTextQuoted(r, compatible)
}

func (t Nullable) CreateColumn() column.Column {
	return column.NewNullable(t.inner.CreateColumn(), t.inner.Default())
}

func (t Nullable) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if !f.IsNull() {
		// Delegate the domain check to the inner type.
		if _, err := t.inner.CreateConstColumn(0, f); err != nil {
			return nil, err
		}
	}
	return column.NewConst(size, f), nil
}

func (t Nullable) Default() field.Field { return field.Null }

func (t Nullable) SizeOfField() (int, error) {
	inner, err := t.inner.SizeOfField()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNoFixedSize, t.Name())
	}
	return inner + 1, nil
}
