package dump

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-msgpack/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinhvc/colstore/internal/bx"
	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/datatype"
	"github.com/trinhvc/colstore/internal/field"
	"github.com/trinhvc/colstore/internal/schema"
	"github.com/trinhvc/colstore/internal/sparseindex"
)

func uint64Column(t *testing.T, vals ...uint64) column.Column {
	t.Helper()
	col := datatype.UInt64{}.CreateColumn()
	for _, v := range vals {
		require.NoError(t, col.Append(field.NewUInt64(v)))
	}
	return col
}

func TestBinaryDumpRoundTrip(t *testing.T) {
	dt := datatype.MustResolve("Array(Nullable(String))")
	col := dt.CreateColumn()
	rows := []field.Field{
		field.NewArray(field.NewString("a"), field.Null),
		field.NewArray(),
		field.NewArray(field.NewString("tab\there")),
	}
	for _, f := range rows {
		require.NoError(t, col.Append(f))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, "tags", dt, col))

	name, gotType, gotCol, err := ReadColumn(&buf)
	require.NoError(t, err)
	assert.Equal(t, "tags", name)
	assert.Equal(t, dt.Name(), gotType.Name())
	require.Equal(t, len(rows), gotCol.Len())
	for i, f := range rows {
		assert.True(t, gotCol.At(i).Equal(f), "row %d", i)
	}
}

func TestBinaryDumpIndexed(t *testing.T) {
	col := uint64Column(t, 0, 1, 2, 3, 4, 5)

	var buf bytes.Buffer
	ix, err := WriteColumnIndexed(&buf, "id", datatype.UInt64{}, col, 2)
	require.NoError(t, err)

	assert.Equal(t, []sparseindex.Mark{
		{Row: 0, Offset: 0},
		{Row: 2, Offset: 16},
		{Row: 4, Offset: 32},
	}, ix.Marks())

	_, _, gotCol, err := ReadColumn(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, gotCol.Len())
}

func TestBinaryDumpBadMagic(t *testing.T) {
	_, _, _, err := ReadColumn(strings.NewReader("NOPExxxxxxxxxxxxxxxx"))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestBinaryDumpCorruptPayload(t *testing.T) {
	col := uint64Column(t, 1, 2, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, "id", datatype.UInt64{}, col))

	// flip one payload byte (the last byte of the file)
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xFF

	_, _, _, err := ReadColumn(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrBadCRC)
}

// A header declaring an absurd payload length must be rejected before the
// payload buffer is allocated.
func TestBinaryDumpOversizedPayloadLength(t *testing.T) {
	hdr := Header{Name: "id", Type: "UInt64", Rows: 1, PayloadLen: 1 << 62}
	var hdrBytes []byte
	require.NoError(t, codec.NewEncoderBytes(&hdrBytes, new(codec.MsgpackHandle)).Encode(hdr))

	var buf bytes.Buffer
	buf.WriteString(magic)
	var fixed [6]byte
	bx.PutU16(fixed[0:2], versionU16)
	bx.PutU32(fixed[2:6], uint32(len(hdrBytes)))
	buf.Write(fixed[:])
	buf.Write(hdrBytes)

	_, _, _, err := ReadColumn(&buf)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestBinaryDumpTruncated(t *testing.T) {
	col := uint64Column(t, 1, 2, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, "id", datatype.UInt64{}, col))

	raw := buf.Bytes()[:buf.Len()-5]
	_, _, _, err := ReadColumn(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestTabSeparatedRoundTrip(t *testing.T) {
	s, err := schema.Parse("id UInt64, note Nullable(String)")
	require.NoError(t, err)

	ids := s.Cols[0].Type.CreateColumn()
	notes := s.Cols[1].Type.CreateColumn()
	require.NoError(t, ids.Append(field.NewUInt64(1)))
	require.NoError(t, ids.Append(field.NewUInt64(2)))
	require.NoError(t, notes.Append(field.NewString("tab\tinside")))
	require.NoError(t, notes.Append(field.Null))

	var buf bytes.Buffer
	require.NoError(t, WriteTabSeparated(&buf, s, []column.Column{ids, notes}))
	assert.Equal(t, "1\ttab\\tinside\n2\t\\N\n", buf.String())

	cols, err := ReadTabSeparated(bufio.NewReader(&buf), s)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, 2, cols[0].Len())
	assert.True(t, cols[1].At(0).Equal(field.NewString("tab\tinside")))
	assert.True(t, cols[1].At(1).IsNull())
}

func TestTabSeparatedMissingTrailingNewline(t *testing.T) {
	s, err := schema.Parse("id UInt64")
	require.NoError(t, err)

	cols, err := ReadTabSeparated(bufio.NewReader(strings.NewReader("1\n2")), s)
	require.NoError(t, err)
	assert.Equal(t, 2, cols[0].Len())
}

func TestTabSeparatedRaggedColumns(t *testing.T) {
	s, err := schema.Parse("a UInt64, b UInt64")
	require.NoError(t, err)

	short := uint64Column(t, 1)
	long := uint64Column(t, 1, 2)

	var buf bytes.Buffer
	err = WriteTabSeparated(&buf, s, []column.Column{short, long})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestTabSeparatedBadSeparator(t *testing.T) {
	s, err := schema.Parse("a UInt64, b UInt64")
	require.NoError(t, err)

	// row is missing its second column
	_, err = ReadTabSeparated(bufio.NewReader(strings.NewReader("1\n")), s)
	assert.Error(t, err)
}
