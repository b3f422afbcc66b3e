package datatype

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// Array composes an element type. Binary form is a uvarint element count
// followed by the element encodings; the same framing is used per row in the
// bulk path. Text form is a bracketed literal with elements rendered in the
// quoted dialect, e.g. [1,2,3] or ['a','b'].
type Array struct {
	elem DataType
}

// maxArraySize bounds the element count a binary Array encoding may declare.
// Anything larger is treated as corrupt input, not allocated.
const maxArraySize = 1 << 20

func NewArray(elem DataType) Array { return Array{elem: elem} }

// Element returns the element type.
func (t Array) Element() DataType { return t.elem }

func (t Array) Name() string { return "Array(" + t.elem.Name() + ")" }
func (t Array) IsNumeric() bool { return false }
func (t Array) Clone() DataType { return Array{elem: t.elem.Clone()} }

func (t Array) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindArray {
		return ErrKindMismatch
	}
	items := f.Items()
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(items)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	for _, it := range items {
		if err := t.elem.SerializeBinary(it, w); err != nil {
			return err
		}
	}
	return nil
}

func (t Array) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return field.Null, decodeErrf("reading Array size: %v", err)
	}
	if size > maxArraySize {
		return field.Null, decodeErrf("Array size %d exceeds maximum %d", size, maxArraySize)
	}
	items := make([]field.Field, 0, size)
	for i := uint64(0); i < size; i++ {
		it, err := t.elem.DeserializeBinary(r)
		if err != nil {
			return field.Null, err
		}
		items = append(items, it)
	}
	return field.NewArray(items...), nil
}

func (t Array) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (t Array) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
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

// writeLiteral renders the bracketed form shared by all three dialects.
func (t Array) writeLiteral(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindArray {
		return ErrKindMismatch
	}
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, it := range f.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := t.elem.SerializeTextQuoted(it, w, false); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// readLiteral parses the bracketed form.
func (t Array) readLiteral(r *bufio.Reader) (field.Field, error) {
	if err := expectByte(r, '['); err != nil {
		return field.Null, err
	}
	var items []field.Field
	for {
		if err := skipSpaces(r); err != nil {
			return field.Null, err
		}
		if len(items) == 0 {
			if ok, err := tryReadToken(r, "]"); err != nil {
				return field.Null, err
			} else if ok {
				return field.NewArray(), nil
			}
		}
		it, err := t.elem.DeserializeTextQuoted(r, false)
		if err != nil {
			return field.Null, err
		}
		items = append(items, it)
		if err := skipSpaces(r); err != nil {
			return field.Null, err
		}
		c, err := r.ReadByte()
		if err != nil {
			return field.Null, decodeErrf("unterminated Array literal")
		}
		switch c {
		case ',':
			continue
		case ']':
			return field.NewArray(items...), nil
		default:
			return field.Null, decodeErrf("expected ',' or ']' in Array literal, found %q", c)
		}
	}
}

func (t Array) SerializeText(f field.Field, w io.Writer) error {
	return t.writeLiteral(f, w)
}

func (t Array) DeserializeText(r *bufio.Reader) (field.Field, error) {
	return t.readLiteral(r)
}

func (t Array) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.writeLiteral(f, w)
}

func (t Array) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.readLiteral(r)
}

func (t Array) SerializeTextQuoted(f field.Field, w io.Writer, compatible bool) error {
	if !compatible {
		return t.writeLiteral(f, w)
	}
	// Compatible mode stringifies the whole literal so systems without
	// native array syntax can load the dump as a string column.
	var buf bytes.Buffer
	if err := t.writeLiteral(f, &buf); err != nil {
		return err
	}
	return writeQuoted(w, buf.String())
}

func (t Array) DeserializeTextQuoted(r *bufio.Reader, compatible bool) (field.Field, error) {
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
		return field.Null, decodeErrf("trailing bytes after Array literal")
	}
	return f, nil
}

func (t Array) CreateColumn() column.Column {
	return column.NewArray(t.elem.CreateColumn())
}

func (t Array) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindArray {
		return nil, ErrKindMismatch
	}
	for _, it := range f.Items() {
		if _, err := t.elem.CreateConstColumn(0, it); err != nil {
			return nil, err
		}
	}
	return column.NewConst(size, f), nil
}

func (t Array) Default() field.Field { return field.NewArray() }

func (t Array) SizeOfField() (int, error) {
	return 0, fmt.Errorf("%w: %s", ErrNoFixedSize, t.Name())
}
