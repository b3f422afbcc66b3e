package sparseindex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinhvc/colstore/internal/datatype"
	"github.com/trinhvc/colstore/internal/field"
	"github.com/trinhvc/colstore/internal/iobuf"
)

func TestBuilderMarksFixedWidth(t *testing.T) {
	dt := datatype.UInt64{}
	col := dt.CreateColumn()
	for i := 0; i < 5; i++ {
		require.NoError(t, col.Append(field.NewUInt64(uint64(i))))
	}

	var buf bytes.Buffer
	cw := iobuf.NewCountingWriter(&buf)
	b := NewBuilder(2, cw)

	require.NoError(t, dt.SerializeBinaryBulk(col, cw, b.Callback()))

	assert.Equal(t, []Mark{
		{Row: 0, Offset: 0},
		{Row: 2, Offset: 16},
		{Row: 4, Offset: 32},
	}, b.Index().Marks())
}

func TestBuilderMarksVariableWidth(t *testing.T) {
	dt := datatype.String{}
	col := dt.CreateColumn()
	for _, s := range []string{"a", "bb", "ccc", "dddd"} {
		require.NoError(t, col.Append(field.NewString(s)))
	}

	var buf bytes.Buffer
	cw := iobuf.NewCountingWriter(&buf)
	b := NewBuilder(2, cw)

	require.NoError(t, dt.SerializeBinaryBulk(col, cw, b.Callback()))

	// rows are 2, 3, 4 and 5 bytes wide (1-byte uvarint prefix each)
	assert.Equal(t, []Mark{
		{Row: 0, Offset: 0},
		{Row: 2, Offset: 5},
	}, b.Index().Marks())
}

func TestSeek(t *testing.T) {
	ix := NewIndex([]Mark{
		{Row: 0, Offset: 0},
		{Row: 2, Offset: 16},
		{Row: 4, Offset: 32},
	})

	m, ok := ix.Seek(0)
	require.True(t, ok)
	assert.Equal(t, Mark{Row: 0, Offset: 0}, m)

	m, ok = ix.Seek(3)
	require.True(t, ok)
	assert.Equal(t, Mark{Row: 2, Offset: 16}, m)

	m, ok = ix.Seek(100)
	require.True(t, ok)
	assert.Equal(t, Mark{Row: 4, Offset: 32}, m)
}

func TestSeekEmptyIndex(t *testing.T) {
	_, ok := Index{}.Seek(0)
	assert.False(t, ok)
}

func TestBadGranularity(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder(0, iobuf.NewCountingWriter(&bytes.Buffer{}))
	})
}
