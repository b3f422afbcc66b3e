package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSimple(t *testing.T) {
	for _, name := range []string{"UInt64", "Int64", "Float64", "String", "UUID"} {
		dt, err := Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, name, dt.Name())
	}
}

func TestResolveNested(t *testing.T) {
	for _, name := range []string{
		"Nullable(String)",
		"Array(UInt64)",
		"Array(Nullable(String))",
		"Tuple(UInt64, String)",
		"Tuple(UInt64, Array(Nullable(String)), UUID)",
	} {
		dt, err := Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, name, dt.Name())
	}
}

// Name and Resolve must be mutual inverses for every constructible type.
func TestNameRoundTrip(t *testing.T) {
	for _, dt := range allTypes() {
		resolved, err := Resolve(dt.Name())
		require.NoError(t, err)
		assert.Equal(t, dt.Name(), resolved.Name())
	}
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("Nonsense")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Resolve("Array(Nonsense)")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Resolve("Array(UInt64")
	assert.ErrorIs(t, err, ErrBadTypeName)

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrBadTypeName)

	_, err = Resolve("Tuple(UInt64, (String)")
	assert.Error(t, err)
}

func TestRegisterCustomType(t *testing.T) {
	Register("AliasedUInt64", func() DataType { return UInt64{} })

	dt, err := Resolve("AliasedUInt64")
	require.NoError(t, err)
	assert.Equal(t, "UInt64", dt.Name())
}

func TestMustResolvePanics(t *testing.T) {
	assert.Panics(t, func() { MustResolve("NoSuchType") })
	assert.NotPanics(t, func() { MustResolve("Array(String)") })
}
