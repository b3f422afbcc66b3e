package column

import "github.com/trinhvc/colstore/internal/field"

// Nullable decorates an inner column with a null map. A null row keeps a
// placeholder default in the inner column so positions stay aligned.
type Nullable struct {
	nulls      []bool
	data       Column
	defaultVal field.Field
}

// NewNullable wraps inner. defaultVal is the inner domain's default, used as
// the placeholder stored under null rows.
func NewNullable(inner Column, defaultVal field.Field) *Nullable {
	return &Nullable{data: inner, defaultVal: defaultVal}
}

func (c *Nullable) Len() int { return len(c.nulls) }

func (c *Nullable) At(i int) field.Field {
	if c.nulls[i] {
		return field.Null
	}
	return c.data.At(i)
}

func (c *Nullable) Append(f field.Field) error {
	if f.IsNull() {
		if err := c.data.Append(c.defaultVal); err != nil {
			return err
		}
		c.nulls = append(c.nulls, true)
		return nil
	}
	if err := c.data.Append(f); err != nil {
		return err
	}
	c.nulls = append(c.nulls, false)
	return nil
}

func (c *Nullable) Reserve(n int) {
	c.data.Reserve(n)
}

func (c *Nullable) Truncate(n int) {
	c.nulls = c.nulls[:n]
	c.data.Truncate(n)
}

// IsNullAt reports whether row i is null without building a Field.
func (c *Nullable) IsNullAt(i int) bool { return c.nulls[i] }

// Inner exposes the wrapped column for codec fast paths.
func (c *Nullable) Inner() Column { return c.data }
