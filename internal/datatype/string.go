package datatype

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// String encodes as a uvarint byte length followed by the raw bytes. The raw
// text dialect is the bytes themselves (reading consumes the rest of the
// stream); the escaped and quoted dialects make the value safe for delimited
// dumps and query literals respectively.
type String struct{}

func (String) Name() string { return "String" }
func (String) IsNumeric() bool { return false }
func (String) Clone() DataType { return String{} }

// maxStringSize bounds the length a binary String encoding may declare.
// Anything larger is treated as corrupt input, not allocated.
const maxStringSize = 1 << 24

func writeStringBinary(w io.Writer, s string) error {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readStringBinary(r *bufio.Reader) (string, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return "", decodeErrf("reading String length: %v", err)
	}
	if size > maxStringSize {
		return "", decodeErrf("String length %d exceeds maximum %d", size, maxStringSize)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", decodeErrf("reading String body of %d bytes: %v", size, err)
	}
	return string(buf), nil
}

func (String) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindString {
		return ErrKindMismatch
	}
	return writeStringBinary(w, f.Str())
}

func (String) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	s, err := readStringBinary(r)
	if err != nil {
		return field.Null, err
	}
	return field.NewString(s), nil
}

func (t String) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	if vec, ok := col.(*column.Strings); ok {
		vals := vec.Values()
		return serializeRows(len(vals), cb, func(i int) error {
			return writeStringBinary(w, vals[i])
		})
	}
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (String) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	vec, fast := col.(*column.Strings)
	if fast {
		vec.Reserve(limit)
	}
	return deserializeRows(limit, func() error {
		if done, err := atEOF(r); done || err != nil {
			if done {
				return io.EOF
			}
			return err
		}
		s, err := readStringBinary(r)
		if err != nil {
			return err
		}
		if fast {
			vec.AppendRaw(s)
			return nil
		}
		return col.Append(field.NewString(s))
	})
}

func (String) SerializeText(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindString {
		return ErrKindMismatch
	}
	_, err := io.WriteString(w, f.Str())
	return err
}

// DeserializeText consumes the rest of the stream: the raw dialect carries
// no delimiter a string value could not itself contain.
func (String) DeserializeText(r *bufio.Reader) (field.Field, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return field.Null, decodeErrf("reading raw String: %v", err)
	}
	return field.NewString(string(buf)), nil
}

func (String) SerializeTextEscaped(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindString {
		return ErrKindMismatch
	}
	return writeEscaped(w, f.Str(), false)
}

func (String) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	s, err := readEscaped(r)
	if err != nil {
		return field.Null, err
	}
	return field.NewString(s), nil
}

func (String) SerializeTextQuoted(f field.Field, w io.Writer, _ bool) error {
	if f.Kind() != field.KindString {
		return ErrKindMismatch
	}
	return writeQuoted(w, f.Str())
}

func (String) DeserializeTextQuoted(r *bufio.Reader, _ bool) (field.Field, error) {
	s, err := readQuoted(r)
	if err != nil {
		return field.Null, err
	}
	return field.NewString(s), nil
}

func (String) CreateColumn() column.Column { return column.NewStrings() }

func (String) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindString {
		return nil, ErrKindMismatch
	}
	return column.NewConst(size, f), nil
}

func (String) Default() field.Field { return field.NewString("") }
func (String) SizeOfField() (int, error) { return 0, ErrNoFixedSize }
