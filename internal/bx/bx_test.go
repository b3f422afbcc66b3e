package bx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLittleEndianReadWrite verifies that the Put/read pairs round-trip
// values using little-endian encoding.
func TestLittleEndianReadWrite(t *testing.T) {
	// ---- U16 ----
	{
		b := make([]byte, 2)
		var v uint16 = 0x1234

		PutU16(b, v)

		// in LE, least-significant byte goes first
		assert.Equal(t, []byte{0x34, 0x12}, b)
		assert.Equal(t, v, U16(b))
	}

	// ---- U32 ----
	{
		b := make([]byte, 4)
		var v uint32 = 0x01020304

		PutU32(b, v)
		assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
		assert.Equal(t, v, U32(b))
	}

	// ---- U64 ----
	{
		b := make([]byte, 8)
		var v uint64 = 0x0102030405060708

		PutU64(b, v)
		assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, b)
		assert.Equal(t, v, U64(b))
	}
}

// TestSignedAliases checks I32/I64 wrappers around the unsigned helpers.
func TestSignedAliases(t *testing.T) {
	{
		b := make([]byte, 4)
		var v int32 = -123456
		PutU32(b, uint32(v))
		assert.Equal(t, v, I32(b))
	}

	{
		b := make([]byte, 8)
		var v int64 = -1234567890
		PutI64(b, v)
		assert.Equal(t, v, I64(b))
	}
}

// TestFloat64Bits verifies the IEEE-754 bit round trip, including values
// that are not equal to themselves.
func TestFloat64Bits(t *testing.T) {
	b := make([]byte, 8)

	PutF64(b, 3.5)
	assert.Equal(t, 3.5, F64(b))

	PutF64(b, math.Inf(-1))
	assert.Equal(t, math.Inf(-1), F64(b))

	PutF64(b, math.NaN())
	assert.True(t, math.IsNaN(F64(b)))
}
