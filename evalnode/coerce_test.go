package evalnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/474420502/docql/value"
)

func TestCoerceDateTimeParsesRFC3339(t *testing.T) {
	v, err := CoerceDateTime{Value: str("2020-01-02T03:04:05Z")}.Calculate(nil)
	require.NoError(t, err)
	assert.Equal(t, value.KindDateTime, v.Kind())
}

func TestCoerceDateTimeUnparsableYieldsNull(t *testing.T) {
	v, err := CoerceDateTime{Value: str("not a date at all")}.Calculate(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestCoerceDateTimeNullStaysNull(t *testing.T) {
	v, err := CoerceDateTime{Value: nullNode()}.Calculate(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestCoerceDateTimeRejectsNonString(t *testing.T) {
	_, err := CoerceDateTime{Value: num(1)}.Calculate(nil)
	assert.Error(t, err)
}

func TestCoerceLowercaseUppercase(t *testing.T) {
	v, err := CoerceLowercase{Value: str("HeLLo")}.Calculate(nil)
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "hello", s)

	v, err = CoerceUppercase{Value: str("HeLLo")}.Calculate(nil)
	require.NoError(t, err)
	s, _ = v.AsString()
	assert.Equal(t, "HELLO", s)
}

func TestCoerceCaseRejectsNonString(t *testing.T) {
	_, err := CoerceLowercase{Value: num(1)}.Calculate(nil)
	assert.Error(t, err)

	_, err = CoerceUppercase{Value: nullNode()}.Calculate(nil)
	assert.Error(t, err)
}
