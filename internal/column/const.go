package column

import "github.com/trinhvc/colstore/internal/field"

// Const represents n logical copies of one stored value. Memory cost is
// independent of n. Codecs consume it through the Column interface like any
// other column.
type Const struct {
	n   int
	val field.Field
}

func NewConst(n int, val field.Field) *Const {
	return &Const{n: n, val: val}
}

func (c *Const) Len() int { return c.n }

func (c *Const) At(i int) field.Field {
	if i < 0 || i >= c.n {
		panic("column: const index out of range")
	}
	return c.val
}

// Append grows the column by one only when f equals the stored value; a
// const column cannot hold a second distinct value.
func (c *Const) Append(f field.Field) error {
	if !f.Equal(c.val) {
		return ErrConstValue
	}
	c.n++
	return nil
}

func (c *Const) Reserve(int) {}

func (c *Const) Truncate(n int) {
	if n < 0 || n > c.n {
		panic("column: const truncate out of range")
	}
	c.n = n
}

// Value returns the single stored value.
func (c *Const) Value() field.Field { return c.val }
