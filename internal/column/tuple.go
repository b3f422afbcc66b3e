package column

import "github.com/trinhvc/colstore/internal/field"

// Tuple stores fixed-arity rows as parallel element columns. The row count
// is tracked explicitly so the zero-arity tuple still has a length.
type Tuple struct {
	n    int
	cols []Column
}

func NewTuple(elements ...Column) *Tuple {
	return &Tuple{cols: elements}
}

func (c *Tuple) Len() int { return c.n }

func (c *Tuple) At(i int) field.Field {
	items := make([]field.Field, len(c.cols))
	for j, col := range c.cols {
		items[j] = col.At(i)
	}
	return field.NewTuple(items...)
}

func (c *Tuple) Append(f field.Field) error {
	if f.Kind() != field.KindTuple || len(f.Items()) != len(c.cols) {
		return ErrKindMismatch
	}
	for j, it := range f.Items() {
		if err := c.cols[j].Append(it); err != nil {
			// roll back the element columns that already grew
			for k := 0; k < j; k++ {
				c.cols[k].Truncate(c.n)
			}
			return err
		}
	}
	c.n++
	return nil
}

func (c *Tuple) Reserve(n int) {
	for _, col := range c.cols {
		col.Reserve(n)
	}
}

func (c *Tuple) Truncate(n int) {
	if n < 0 || n > c.n {
		panic("column: tuple truncate out of range")
	}
	for _, col := range c.cols {
		col.Truncate(n)
	}
	c.n = n
}

// Columns exposes the parallel element columns for codec fast paths.
func (c *Tuple) Columns() []Column { return c.cols }
