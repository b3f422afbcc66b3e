package column

import "github.com/trinhvc/colstore/internal/field"

// Array stores variable-length element sequences as a flat nested column
// plus cumulative end offsets, one per row.
type Array struct {
	offsets []int
	data    Column
}

func NewArray(elements Column) *Array {
	return &Array{data: elements}
}

func (c *Array) Len() int { return len(c.offsets) }

func (c *Array) At(i int) field.Field {
	start := 0
	if i > 0 {
		start = c.offsets[i-1]
	}
	end := c.offsets[i]
	items := make([]field.Field, 0, end-start)
	for j := start; j < end; j++ {
		items = append(items, c.data.At(j))
	}
	return field.NewArray(items...)
}

func (c *Array) Append(f field.Field) error {
	if f.Kind() != field.KindArray {
		return ErrKindMismatch
	}
	items := f.Items()
	prevLen := c.data.Len()
	for _, it := range items {
		if err := c.data.Append(it); err != nil {
			// roll back so a failed row leaves no orphaned elements
			c.data.Truncate(prevLen)
			return err
		}
	}
	prev := 0
	if len(c.offsets) > 0 {
		prev = c.offsets[len(c.offsets)-1]
	}
	c.offsets = append(c.offsets, prev+len(items))
	return nil
}

func (c *Array) Reserve(n int) {
	// Element counts per row are unknown; only the offsets can be sized.
	if cap(c.offsets)-len(c.offsets) < n {
		grown := make([]int, len(c.offsets), len(c.offsets)+n)
		copy(grown, c.offsets)
		c.offsets = grown
	}
}

func (c *Array) Truncate(n int) {
	elems := 0
	if n > 0 {
		elems = c.offsets[n-1]
	}
	c.offsets = c.offsets[:n]
	c.data.Truncate(elems)
}

// SizeAt returns the element count of row i.
func (c *Array) SizeAt(i int) int {
	start := 0
	if i > 0 {
		start = c.offsets[i-1]
	}
	return c.offsets[i] - start
}

// Elements exposes the flat nested column for codec fast paths.
func (c *Array) Elements() Column { return c.data }
