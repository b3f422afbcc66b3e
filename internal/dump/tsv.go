package dump

import (
	"bufio"
	"errors"
	"io"

	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/schema"
)

var (
	ErrSchemaMismatch = errors.New("dump: schema/columns mismatch")
	ErrRaggedRows     = errors.New("dump: columns differ in length")
	ErrBadSeparator   = errors.New("dump: expected tab or newline")
)

// WriteTabSeparated writes the columns row-major in the escaped text
// dialect: values separated by tabs, rows by newlines. Values embed their
// own tabs and newlines escaped, so the frame stays parseable.
func WriteTabSeparated(w io.Writer, s schema.Schema, cols []column.Column) error {
	if len(cols) != s.NumCols() || len(cols) == 0 {
		return ErrSchemaMismatch
	}
	rows := cols[0].Len()
	for _, c := range cols[1:] {
		if c.Len() != rows {
			return ErrRaggedRows
		}
	}
	for row := 0; row < rows; row++ {
		for i, sc := range s.Cols {
			if i > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			if err := sc.Type.SerializeTextEscaped(cols[i].At(row), w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ReadTabSeparated parses rows until EOF into fresh columns, one per schema
// column. A missing trailing newline on the last row is accepted.
func ReadTabSeparated(r *bufio.Reader, s schema.Schema) ([]column.Column, error) {
	if s.NumCols() == 0 {
		return nil, ErrSchemaMismatch
	}
	cols := make([]column.Column, s.NumCols())
	for i, sc := range s.Cols {
		cols[i] = sc.Type.CreateColumn()
	}
	for {
		if _, err := r.Peek(1); errors.Is(err, io.EOF) {
			return cols, nil
		} else if err != nil {
			return nil, err
		}
		for i, sc := range s.Cols {
			f, err := sc.Type.DeserializeTextEscaped(r)
			if err != nil {
				return nil, err
			}
			if err := cols[i].Append(f); err != nil {
				return nil, err
			}
			last := i == s.NumCols()-1
			c, err := r.ReadByte()
			if errors.Is(err, io.EOF) {
				if last {
					return cols, nil
				}
				return nil, ErrBadSeparator
			}
			if err != nil {
				return nil, err
			}
			if (last && c != '\n') || (!last && c != '\t') {
				return nil, ErrBadSeparator
			}
		}
	}
}
