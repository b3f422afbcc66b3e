package column

import (
	"slices"

	"github.com/google/uuid"

	"github.com/trinhvc/colstore/internal/field"
)

// The vector columns below store their domain natively so bulk codecs can
// work on the raw slices instead of boxing every value into a Field.

type UInt64s struct {
	vals []uint64
}

func NewUInt64s() *UInt64s { return &UInt64s{} }

func (c *UInt64s) Len() int { return len(c.vals) }
func (c *UInt64s) At(i int) field.Field { return field.NewUInt64(c.vals[i]) }
func (c *UInt64s) Truncate(n int) { c.vals = c.vals[:n] }
func (c *UInt64s) Reserve(n int) { c.vals = slices.Grow(c.vals, n) }
func (c *UInt64s) Values() []uint64 { return c.vals }
func (c *UInt64s) AppendRaw(v uint64) { c.vals = append(c.vals, v) }

func (c *UInt64s) Append(f field.Field) error {
	if f.Kind() != field.KindUInt64 {
		return ErrKindMismatch
	}
	c.vals = append(c.vals, f.UInt64())
	return nil
}

type Int64s struct {
	vals []int64
}

func NewInt64s() *Int64s { return &Int64s{} }

func (c *Int64s) Len() int { return len(c.vals) }
func (c *Int64s) At(i int) field.Field { return field.NewInt64(c.vals[i]) }
func (c *Int64s) Truncate(n int) { c.vals = c.vals[:n] }
func (c *Int64s) Reserve(n int) { c.vals = slices.Grow(c.vals, n) }
func (c *Int64s) Values() []int64 { return c.vals }
func (c *Int64s) AppendRaw(v int64) { c.vals = append(c.vals, v) }

func (c *Int64s) Append(f field.Field) error {
	if f.Kind() != field.KindInt64 {
		return ErrKindMismatch
	}
	c.vals = append(c.vals, f.Int64())
	return nil
}

type Float64s struct {
	vals []float64
}

func NewFloat64s() *Float64s { return &Float64s{} }

func (c *Float64s) Len() int { return len(c.vals) }
func (c *Float64s) At(i int) field.Field { return field.NewFloat64(c.vals[i]) }
func (c *Float64s) Truncate(n int) { c.vals = c.vals[:n] }
func (c *Float64s) Reserve(n int) { c.vals = slices.Grow(c.vals, n) }
func (c *Float64s) Values() []float64 { return c.vals }
func (c *Float64s) AppendRaw(v float64) { c.vals = append(c.vals, v) }

func (c *Float64s) Append(f field.Field) error {
	if f.Kind() != field.KindFloat64 {
		return ErrKindMismatch
	}
	c.vals = append(c.vals, f.Float64())
	return nil
}

type Strings struct {
	vals []string
}

func NewStrings() *Strings { return &Strings{} }

func (c *Strings) Len() int { return len(c.vals) }
func (c *Strings) At(i int) field.Field { return field.NewString(c.vals[i]) }
func (c *Strings) Truncate(n int) { c.vals = c.vals[:n] }
func (c *Strings) Reserve(n int) { c.vals = slices.Grow(c.vals, n) }
func (c *Strings) Values() []string { return c.vals }
func (c *Strings) AppendRaw(v string) { c.vals = append(c.vals, v) }

func (c *Strings) Append(f field.Field) error {
	if f.Kind() != field.KindString {
		return ErrKindMismatch
	}
	c.vals = append(c.vals, f.Str())
	return nil
}

type UUIDs struct {
	vals []uuid.UUID
}

func NewUUIDs() *UUIDs { return &UUIDs{} }

func (c *UUIDs) Len() int { return len(c.vals) }
func (c *UUIDs) At(i int) field.Field { return field.NewUUID(c.vals[i]) }
func (c *UUIDs) Truncate(n int) { c.vals = c.vals[:n] }
func (c *UUIDs) Reserve(n int) { c.vals = slices.Grow(c.vals, n) }
func (c *UUIDs) Values() []uuid.UUID { return c.vals }
func (c *UUIDs) AppendRaw(v uuid.UUID) { c.vals = append(c.vals, v) }

func (c *UUIDs) Append(f field.Field) error {
	if f.Kind() != field.KindUUID {
		return ErrKindMismatch
	}
	c.vals = append(c.vals, f.UUID())
	return nil
}
