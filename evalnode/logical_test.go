package evalnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/474420502/docql/value"
)

// countingNode records how many times Calculate was invoked, used to prove
// both operands of And/Or are evaluated even when one side alone would
// decide the result.
type countingNode struct {
	calls *int
	v     value.Value
}

func (c countingNode) Calculate([]byte) (value.Value, error) {
	*c.calls++
	return c.v, nil
}

func TestAndBothOperandsAlwaysEvaluated(t *testing.T) {
	calls := 0
	right := countingNode{calls: &calls, v: value.Bool(true)}
	_, err := And{Left: boolNode(false), Right: right}.Calculate(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "right operand of And must be evaluated even though false && _ is already false")
}

func TestOrBothOperandsAlwaysEvaluated(t *testing.T) {
	calls := 0
	right := countingNode{calls: &calls, v: value.Bool(false)}
	_, err := Or{Left: boolNode(true), Right: right}.Calculate(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "right operand of Or must be evaluated even though true || _ is already true")
}

func TestAndTruthTable(t *testing.T) {
	cases := []struct {
		l, r, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, c := range cases {
		v, err := And{Left: boolNode(c.l), Right: boolNode(c.r)}.Calculate(nil)
		require.NoError(t, err)
		b, _ := v.AsBool()
		assert.Equal(t, c.want, b)
	}
}

func TestOrTruthTable(t *testing.T) {
	cases := []struct {
		l, r, want bool
	}{
		{true, true, true},
		{true, false, true},
		{false, true, true},
		{false, false, false},
	}
	for _, c := range cases {
		v, err := Or{Left: boolNode(c.l), Right: boolNode(c.r)}.Calculate(nil)
		require.NoError(t, err)
		b, _ := v.AsBool()
		assert.Equal(t, c.want, b)
	}
}

func TestNotNegatesBool(t *testing.T) {
	v, err := Not{Value: boolNode(true)}.Calculate(nil)
	require.NoError(t, err)
	b, _ := v.AsBool()
	assert.False(t, b)
}

func TestNotWrapsComparison(t *testing.T) {
	v, err := Not{Value: Eq{Left: num(1), Right: num(2)}}.Calculate(nil)
	require.NoError(t, err)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestAndRejectsNonBoolOperand(t *testing.T) {
	_, err := And{Left: num(1), Right: boolNode(true)}.Calculate(nil)
	assert.Error(t, err)
}
