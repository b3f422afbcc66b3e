package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinhvc/colstore/internal/datatype"
)

func TestParse(t *testing.T) {
	s, err := Parse("id UInt64, name String, tags Array(Nullable(String))")
	require.NoError(t, err)
	require.Equal(t, 3, s.NumCols())

	assert.Equal(t, "id", s.Cols[0].Name)
	assert.Equal(t, "UInt64", s.Cols[0].Type.Name())
	assert.Equal(t, "Array(Nullable(String))", s.Cols[2].Type.Name())
}

func TestParseParameterizedWithComma(t *testing.T) {
	s, err := Parse("pair Tuple(UInt64, String)")
	require.NoError(t, err)
	require.Equal(t, 1, s.NumCols())
	assert.Equal(t, "Tuple(UInt64, String)", s.Cols[0].Type.Name())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("id NoSuchType")
	assert.ErrorIs(t, err, datatype.ErrUnknownType)

	_, err = Parse("justaname")
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestColumnIndex(t *testing.T) {
	s, err := Parse("a UInt64, b String")
	require.NoError(t, err)

	assert.Equal(t, 0, s.ColumnIndex("a"))
	assert.Equal(t, 1, s.ColumnIndex("b"))
	assert.Equal(t, -1, s.ColumnIndex("c"))
}

func TestString(t *testing.T) {
	s, err := Parse("a UInt64, b Nullable(String)")
	require.NoError(t, err)
	assert.Equal(t, "a UInt64, b Nullable(String)", s.String())
}
