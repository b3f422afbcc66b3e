package datatype

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/trinhvc/colstore/internal/bx"
	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/field"
)

// Numeric types encode as fixed-width 8-byte little-endian values. All three
// text dialects render the same strconv form: numbers never need escaping or
// quoting.

type UInt64 struct{}

func (UInt64) Name() string { return "UInt64" }
func (UInt64) IsNumeric() bool { return true }
func (UInt64) Clone() DataType { return UInt64{} }

func (UInt64) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindUInt64 {
		return ErrKindMismatch
	}
	var b [8]byte
	bx.PutU64(b[:], f.UInt64())
	_, err := w.Write(b[:])
	return err
}

func (UInt64) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return field.Null, decodeErrf("reading UInt64: %v", err)
	}
	return field.NewUInt64(bx.U64(b[:])), nil
}

func (t UInt64) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	if vec, ok := col.(*column.UInt64s); ok {
		vals := vec.Values()
		return serializeRows(len(vals), cb, func(i int) error {
			var b [8]byte
			bx.PutU64(b[:], vals[i])
			_, err := w.Write(b[:])
			return err
		})
	}
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (UInt64) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	vec, fast := col.(*column.UInt64s)
	if fast {
		vec.Reserve(limit)
	}
	return deserializeRows(limit, func() error {
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return decodeErrf("reading UInt64: %v", err)
		}
		if fast {
			vec.AppendRaw(bx.U64(b[:]))
			return nil
		}
		return col.Append(field.NewUInt64(bx.U64(b[:])))
	})
}

func (UInt64) SerializeText(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindUInt64 {
		return ErrKindMismatch
	}
	_, err := io.WriteString(w, strconv.FormatUint(f.UInt64(), 10))
	return err
}

func (UInt64) DeserializeText(r *bufio.Reader) (field.Field, error) {
	tok, err := readToken(r)
	if err != nil {
		return field.Null, err
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return field.Null, decodeErrf("parsing UInt64 from %q: %v", tok, err)
	}
	return field.NewUInt64(v), nil
}

func (t UInt64) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.SerializeText(f, w)
}

func (t UInt64) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.DeserializeText(r)
}

func (t UInt64) SerializeTextQuoted(f field.Field, w io.Writer, _ bool) error {
	return t.SerializeText(f, w)
}

func (t UInt64) DeserializeTextQuoted(r *bufio.Reader, _ bool) (field.Field, error) {
	return t.DeserializeText(r)
}

func (UInt64) CreateColumn() column.Column { return column.NewUInt64s() }

func (UInt64) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindUInt64 {
		return nil, ErrKindMismatch
	}
	return column.NewConst(size, f), nil
}

func (UInt64) Default() field.Field { return field.NewUInt64(0) }
func (UInt64) SizeOfField() (int, error) { return 8, nil }

type Int64 struct{}

func (Int64) Name() string { return "Int64" }
func (Int64) IsNumeric() bool { return true }
func (Int64) Clone() DataType { return Int64{} }

func (Int64) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindInt64 {
		return ErrKindMismatch
	}
	var b [8]byte
	bx.PutI64(b[:], f.Int64())
	_, err := w.Write(b[:])
	return err
}

func (Int64) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return field.Null, decodeErrf("reading Int64: %v", err)
	}
	return field.NewInt64(bx.I64(b[:])), nil
}

func (t Int64) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	if vec, ok := col.(*column.Int64s); ok {
		vals := vec.Values()
		return serializeRows(len(vals), cb, func(i int) error {
			var b [8]byte
			bx.PutI64(b[:], vals[i])
			_, err := w.Write(b[:])
			return err
		})
	}
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (Int64) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	vec, fast := col.(*column.Int64s)
	if fast {
		vec.Reserve(limit)
	}
	return deserializeRows(limit, func() error {
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return decodeErrf("reading Int64: %v", err)
		}
		if fast {
			vec.AppendRaw(bx.I64(b[:]))
			return nil
		}
		return col.Append(field.NewInt64(bx.I64(b[:])))
	})
}

func (Int64) SerializeText(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindInt64 {
		return ErrKindMismatch
	}
	_, err := io.WriteString(w, strconv.FormatInt(f.Int64(), 10))
	return err
}

func (Int64) DeserializeText(r *bufio.Reader) (field.Field, error) {
	tok, err := readToken(r)
	if err != nil {
		return field.Null, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return field.Null, decodeErrf("parsing Int64 from %q: %v", tok, err)
	}
	return field.NewInt64(v), nil
}

func (t Int64) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.SerializeText(f, w)
}

func (t Int64) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.DeserializeText(r)
}

func (t Int64) SerializeTextQuoted(f field.Field, w io.Writer, _ bool) error {
	return t.SerializeText(f, w)
}

func (t Int64) DeserializeTextQuoted(r *bufio.Reader, _ bool) (field.Field, error) {
	return t.DeserializeText(r)
}

func (Int64) CreateColumn() column.Column { return column.NewInt64s() }

func (Int64) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindInt64 {
		return nil, ErrKindMismatch
	}
	return column.NewConst(size, f), nil
}

func (Int64) Default() field.Field { return field.NewInt64(0) }
func (Int64) SizeOfField() (int, error) { return 8, nil }

type Float64 struct{}

func (Float64) Name() string { return "Float64" }
func (Float64) IsNumeric() bool { return true }
func (Float64) Clone() DataType { return Float64{} }

func (Float64) SerializeBinary(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindFloat64 {
		return ErrKindMismatch
	}
	var b [8]byte
	bx.PutF64(b[:], f.Float64())
	_, err := w.Write(b[:])
	return err
}

func (Float64) DeserializeBinary(r *bufio.Reader) (field.Field, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return field.Null, decodeErrf("reading Float64: %v", err)
	}
	return field.NewFloat64(bx.F64(b[:])), nil
}

func (t Float64) SerializeBinaryBulk(col column.Column, w io.Writer, cb WriteCallback) error {
	if vec, ok := col.(*column.Float64s); ok {
		vals := vec.Values()
		return serializeRows(len(vals), cb, func(i int) error {
			var b [8]byte
			bx.PutF64(b[:], vals[i])
			_, err := w.Write(b[:])
			return err
		})
	}
	return serializeRows(col.Len(), cb, func(i int) error {
		return t.SerializeBinary(col.At(i), w)
	})
}

func (Float64) DeserializeBinaryBulk(r *bufio.Reader, col column.Column, limit int) (int, error) {
	vec, fast := col.(*column.Float64s)
	if fast {
		vec.Reserve(limit)
	}
	return deserializeRows(limit, func() error {
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return decodeErrf("reading Float64: %v", err)
		}
		if fast {
			vec.AppendRaw(bx.F64(b[:]))
			return nil
		}
		return col.Append(field.NewFloat64(bx.F64(b[:])))
	})
}

func (Float64) SerializeText(f field.Field, w io.Writer) error {
	if f.Kind() != field.KindFloat64 {
		return ErrKindMismatch
	}
	_, err := io.WriteString(w, strconv.FormatFloat(f.Float64(), 'g', -1, 64))
	return err
}

func (Float64) DeserializeText(r *bufio.Reader) (field.Field, error) {
	tok, err := readToken(r)
	if err != nil {
		return field.Null, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return field.Null, decodeErrf("parsing Float64 from %q: %v", tok, err)
	}
	return field.NewFloat64(v), nil
}

func (t Float64) SerializeTextEscaped(f field.Field, w io.Writer) error {
	return t.SerializeText(f, w)
}

func (t Float64) DeserializeTextEscaped(r *bufio.Reader) (field.Field, error) {
	return t.DeserializeText(r)
}

func (t Float64) SerializeTextQuoted(f field.Field, w io.Writer, _ bool) error {
	return t.SerializeText(f, w)
}

func (t Float64) DeserializeTextQuoted(r *bufio.Reader, _ bool) (field.Field, error) {
	return t.DeserializeText(r)
}

func (Float64) CreateColumn() column.Column { return column.NewFloat64s() }

func (Float64) CreateConstColumn(size int, f field.Field) (column.Column, error) {
	if f.Kind() != field.KindFloat64 {
		return nil, ErrKindMismatch
	}
	return column.NewConst(size, f), nil
}

func (Float64) Default() field.Field { return field.NewFloat64(0) }
func (Float64) SizeOfField() (int, error) { return 8, nil }
