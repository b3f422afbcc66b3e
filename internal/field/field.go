// Package field provides the scalar value container used across the codec
// layer. A Field is a tagged union holding exactly one value of one domain;
// it is immutable once constructed and compared by value.
package field

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindUInt64
	KindInt64
	KindFloat64
	KindString
	KindUUID
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindUInt64:
		return "UInt64"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindUUID:
		return "UUID"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	default:
		return "Unknown"
	}
}

// Field holds one value of one domain. The zero value is the Null field.
// Accessors are only meaningful for the matching kind; binding a Field to
// the right kind is the caller's job (the schema layer checks domains, not
// every accessor).
type Field struct {
	kind  Kind
	num   uint64 // UInt64 raw value, Int64 two's complement, Float64 IEEE bits
	str   string
	uid   uuid.UUID
	items []Field
}

var Null = Field{}

func NewUInt64(v uint64) Field { return Field{kind: KindUInt64, num: v} }
func NewInt64(v int64) Field { return Field{kind: KindInt64, num: uint64(v)} }
func NewFloat64(v float64) Field { return Field{kind: KindFloat64, num: math.Float64bits(v)} }
func NewString(s string) Field { return Field{kind: KindString, str: s} }
func NewUUID(u uuid.UUID) Field { return Field{kind: KindUUID, uid: u} }

// NewArray copies items so later mutation of the argument cannot leak in.
func NewArray(items ...Field) Field {
	return Field{kind: KindArray, items: append([]Field(nil), items...)}
}

func NewTuple(items ...Field) Field {
	return Field{kind: KindTuple, items: append([]Field(nil), items...)}
}

func (f Field) Kind() Kind { return f.kind }
func (f Field) IsNull() bool { return f.kind == KindNull }

func (f Field) UInt64() uint64 { return f.num }
func (f Field) Int64() int64 { return int64(f.num) }
func (f Field) Float64() float64 { return math.Float64frombits(f.num) }
func (f Field) Str() string { return f.str }
func (f Field) UUID() uuid.UUID { return f.uid }

// Items returns the elements of an Array or Tuple field. The returned slice
// is shared; callers must not mutate it.
func (f Field) Items() []Field { return f.items }

// Equal reports deep value equality. Fields of different kinds are never
// equal, including Null vs. anything.
func (f Field) Equal(other Field) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case KindNull:
		return true
	case KindUInt64, KindInt64, KindFloat64:
		return f.num == other.num
	case KindString:
		return f.str == other.str
	case KindUUID:
		return f.uid == other.uid
	case KindArray, KindTuple:
		if len(f.items) != len(other.items) {
			return false
		}
		for i := range f.items {
			if !f.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the field for debugging and error messages. This is not one
// of the codec dialects; use the DataType text methods for those.
func (f Field) String() string {
	switch f.kind {
	case KindNull:
		return "NULL"
	case KindUInt64:
		return strconv.FormatUint(f.num, 10)
	case KindInt64:
		return strconv.FormatInt(int64(f.num), 10)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(f.num), 'g', -1, 64)
	case KindString:
		return strconv.Quote(f.str)
	case KindUUID:
		return f.uid.String()
	case KindArray, KindTuple:
		opener, closer := "[", "]"
		if f.kind == KindTuple {
			opener, closer = "(", ")"
		}
		var sb strings.Builder
		sb.WriteString(opener)
		for i, it := range f.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(it.String())
		}
		sb.WriteString(closer)
		return sb.String()
	default:
		return "<invalid>"
	}
}
