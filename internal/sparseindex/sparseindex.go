// Package sparseindex builds a positional index over a bulk binary column
// encoding in the same pass that writes it. A Builder hands the codec a
// write callback; each invocation records the byte offset of the value about
// to be written, every granularity rows. The resulting Index answers "at
// which byte offset does row r's mark start" so a reader can skip ahead
// without decoding from the beginning.
package sparseindex

import (
	"sort"

	"github.com/trinhvc/colstore/internal/datatype"
	"github.com/trinhvc/colstore/internal/iobuf"
)

// Mark correlates a row position with the byte offset its encoding starts at.
type Mark struct {
	Row    int
	Offset int64
}

type Builder struct {
	granularity int
	w           *iobuf.CountingWriter
	marks       []Mark
	nextRow     int
}

// NewBuilder records a mark every granularity rows of the column that is
// serialized through w. granularity must be positive.
func NewBuilder(granularity int, w *iobuf.CountingWriter) *Builder {
	if granularity <= 0 {
		panic("sparseindex: granularity must be positive")
	}
	return &Builder{granularity: granularity, w: w}
}

// Callback returns the write callback to pass to SerializeBinaryBulk. The
// serializer invokes it exactly at value boundaries, so BytesWritten is the
// offset of the value about to be written.
func (b *Builder) Callback() datatype.WriteCallback {
	return func() int {
		b.marks = append(b.marks, Mark{Row: b.nextRow, Offset: b.w.BytesWritten()})
		b.nextRow += b.granularity
		return b.nextRow
	}
}

// Index returns the marks collected so far.
func (b *Builder) Index() Index {
	return Index{marks: append([]Mark(nil), b.marks...)}
}

// Index is an ordered mark table over one encoded column.
type Index struct {
	marks []Mark
}

func NewIndex(marks []Mark) Index {
	return Index{marks: append([]Mark(nil), marks...)}
}

func (ix Index) Marks() []Mark { return ix.marks }

// Seek returns the latest mark at or before row, so a reader can start
// decoding there and skip forward. ok is false when the index is empty or
// row precedes the first mark.
func (ix Index) Seek(row int) (Mark, bool) {
	i := sort.Search(len(ix.marks), func(i int) bool {
		return ix.marks[i].Row > row
	})
	if i == 0 {
		return Mark{}, false
	}
	return ix.marks[i-1], true
}
