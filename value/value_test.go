package value

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityReflexiveSymmetricTransitive(t *testing.T) {
	vals := []Value{
		Null,
		String("a"),
		Number(1),
		Bool(true),
		DateTime(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)),
		Array([]Value{Number(1), String("x")}),
		Object(map[string]Value{"a": Number(1)}),
	}
	for _, v := range vals {
		assert.True(t, v.Equal(v), "reflexive: %v", v)
	}

	a := Array([]Value{Number(1), Number(2)})
	b := Array([]Value{Number(1), Number(2)})
	c := Array([]Value{Number(1), Number(2)})
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
}

func TestEqualityAcrossVariantsIsFalse(t *testing.T) {
	assert.False(t, Null.Equal(Number(0)))
	assert.False(t, Number(0).Equal(Null))
	assert.False(t, String("1").Equal(Number(1)))
	assert.False(t, Bool(false).Equal(Null))
}

func TestNullEqualsNull(t *testing.T) {
	assert.True(t, Null.Equal(Null))
}

func TestObjectEqualityIgnoresInsertionOrder(t *testing.T) {
	a := Object(map[string]Value{"a": Number(1), "b": Number(2)})
	b := Object(map[string]Value{"b": Number(2), "a": Number(1)})
	assert.True(t, a.Equal(b))
}

func TestEmptyArrayLiteral(t *testing.T) {
	v := Array(nil)
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Empty(t, arr)
}

func TestMarshalDateTimeRFC3339(t *testing.T) {
	dt := DateTime(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC))
	b, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-02T03:04:05Z"`, string(b))
}

func TestRoundTripJSON(t *testing.T) {
	cases := []Value{
		Null,
		String("hello"),
		Number(3.5),
		Bool(true),
		Array([]Value{Number(1), String("x"), Bool(false)}),
		Object(map[string]Value{"a": Number(1), "b": String("y")}),
	}
	for _, v := range cases {
		b, err := json.Marshal(v)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, v.Equal(got), "round trip mismatch for %v", v)
	}
}

func TestCompareOnlyAcceptsMatchingComparableKinds(t *testing.T) {
	_, ok := Compare(Number(1), String("a"))
	assert.False(t, ok)

	_, ok = Compare(Bool(true), Bool(false))
	assert.False(t, ok)

	cmp, ok := Compare(Number(1), Number(2))
	require.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = Compare(String("b"), String("a"))
	require.True(t, ok)
	assert.Equal(t, 1, cmp)
}
