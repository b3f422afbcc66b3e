package field

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsNull(t *testing.T) {
	var f Field
	assert.Equal(t, KindNull, f.Kind())
	assert.True(t, f.IsNull())
	assert.True(t, f.Equal(Null))
}

func TestKindsAndAccessors(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, uint64(42), NewUInt64(42).UInt64())
	assert.Equal(t, int64(-42), NewInt64(-42).Int64())
	assert.Equal(t, 2.5, NewFloat64(2.5).Float64())
	assert.Equal(t, "hi", NewString("hi").Str())
	assert.Equal(t, u, NewUUID(u).UUID())

	arr := NewArray(NewUInt64(1), NewUInt64(2))
	assert.Equal(t, KindArray, arr.Kind())
	assert.Len(t, arr.Items(), 2)

	tup := NewTuple(NewUInt64(1), NewString("a"))
	assert.Equal(t, KindTuple, tup.Kind())
	assert.Len(t, tup.Items(), 2)
}

func TestEqual(t *testing.T) {
	assert.True(t, NewUInt64(7).Equal(NewUInt64(7)))
	assert.False(t, NewUInt64(7).Equal(NewUInt64(8)))

	// same bits, different kinds
	assert.False(t, NewUInt64(7).Equal(NewInt64(7)))
	assert.False(t, NewUInt64(0).Equal(Null))

	a := NewArray(NewString("x"), NewString("y"))
	b := NewArray(NewString("x"), NewString("y"))
	c := NewArray(NewString("x"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	// nested
	n1 := NewTuple(NewUInt64(1), NewArray(NewString("a")))
	n2 := NewTuple(NewUInt64(1), NewArray(NewString("a")))
	n3 := NewTuple(NewUInt64(1), NewArray(NewString("b")))
	assert.True(t, n1.Equal(n2))
	assert.False(t, n1.Equal(n3))
}

func TestArrayConstructorCopies(t *testing.T) {
	items := []Field{NewUInt64(1), NewUInt64(2)}
	arr := NewArray(items...)
	items[0] = NewUInt64(99)
	assert.Equal(t, uint64(1), arr.Items()[0].UInt64())
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "NULL", Null.String())
	assert.Equal(t, "42", NewUInt64(42).String())
	assert.Equal(t, `"a b"`, NewString("a b").String())
	assert.Equal(t, "[1, 2]", NewArray(NewUInt64(1), NewUInt64(2)).String())
	assert.Equal(t, `(1, "a")`, NewTuple(NewUInt64(1), NewString("a")).String())
}
