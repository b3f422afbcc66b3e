package datatype

import (
	"bufio"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// UUID encodes as the 16 raw bytes of the identifier. Textual form is the
// canonical hyphenated rendering; the quoted dialect wraps it in single
// quotes like a string literal.
type UUID struct{}

func (UUID) Name() string { return "UUID" }
func (UUID) IsNumeric() bool { return false }
func (UUID) Clone() DataType { return UUID{} }

func (UUID) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindUUID {
		return ErrKindMismatch
	}
	u := f.UUID()
	_, err := w.Write(u[:])
	return err
}

func (UUID) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	var u uuid.UUID
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return field.Null, decodeErrf("reading UUID: %v", err)
	}
	return field.NewUUID(u), nil
}

func (t UUID) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	if vec, ok := col.(*column.UUIDs); ok {
		vals := vec.Values()
		return serializeRows(len(vals), cb, func(i int) error {
			_, err := w.Write(vals[i][:])
			return err
		})
	}
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (UUID) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	vec, fast := col.(*column.UUIDs)
	if fast {
		vec.Reserve(limit)
	}
	return deserializeRows(limit, func() error {
		var u uuid.UUID
		if _, err := io.ReadFull(r, u[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return decodeErrf("reading UUID: %v", err)
		}
		if fast {
			vec.AppendRaw(u)
			return nil
		}
		return col.Append(field.NewUUID(u))
	})
}

func (UUID) SerializeText(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindUUID {
		return ErrKindMismatch
	}
	_, err := io.WriteString(w, f.UUID().String())
	return err
}

func (UUID) DeserializeText(r *bufio.Reader) (field.Field, error) {
	tok, err := readToken(r)
	if err != nil {
		return field.Null, err
	}
	u, err := uuid.Parse(tok)
	if err != nil {
		return field.Null, decodeErrf("parsing UUID from %q: %v", tok, err)
	}
	return field.NewUUID(u), nil
}

func (t UUID) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.SerializeText(f, w)
}

func (t UUID) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.DeserializeText(r)
}

func (t UUID) SerializeTextQuoted(f field.Field, w io.Writer, _ bool) error {
	if f.Kind() != field.KindUUID {
		return ErrKindMismatch
	}
	return writeQuoted(w, f.UUID().String())
}

func (t UUID) DeserializeTextQuoted(r *bufio.Reader, _ bool) (field.Field, error) {
	s, err := readQuoted(r)
	if err != nil {
		return field.Null, err
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return field.Null, decodeErrf("parsing UUID from %q: %v", s, err)
	}
	return field.NewUUID(u), nil
}

func (UUID) CreateColumn() column.Column { return column.NewUUIDs() }

func (UUID) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindUUID {
		return nil, ErrKindMismatch
	}
	return column.NewConst(size, f), nil
}

func (UUID) Default() field.Field { return field.NewUUID(uuid.Nil) }
func (UUID) SizeOfField() (int, error) { return 16, nil }
