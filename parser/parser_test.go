package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/474420502/docql/evalnode"
	"github.com/474420502/docql/value"
)

// stubExtractor resolves every selector path to a fixed map, letting these
// tests exercise the parser without pulling in a real document store.
type stubExtractor struct {
	fields map[string]value.Value
}

func (s stubExtractor) Extract(_ []byte, path string) (value.Value, error) {
	if v, ok := s.fields[path]; ok {
		return v, nil
	}
	return value.Null, nil
}

func calc(t *testing.T, src string, fields map[string]value.Value) value.Value {
	t.Helper()
	node, err := Parse([]byte(src), stubExtractor{fields: fields})
	require.NoError(t, err, src)
	v, err := node.Calculate(nil)
	require.NoError(t, err, src)
	return v
}

func TestParseNoOperatorPrecedence(t *testing.T) {
	v := calc(t, "1 + 2 * 3", nil)
	n, _ := v.AsNumber()
	assert.Equal(t, 9.0, n, "left-to-right association: (1+2)*3, not 1+(2*3)")
}

func TestParseParenthesesOverrideAssociation(t *testing.T) {
	v := calc(t, "1 + (2 * 3)", nil)
	n, _ := v.AsNumber()
	assert.Equal(t, 7.0, n)
}

func TestParseSelectorPath(t *testing.T) {
	v := calc(t, ".name == \"bob\"", map[string]value.Value{"name": value.String("bob")})
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestParseStringLiteralUnquotes(t *testing.T) {
	node, err := Parse([]byte(`"hello"`), stubExtractor{})
	require.NoError(t, err)
	v, err := node.Calculate(nil)
	require.NoError(t, err)
	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestParseArrayLiteral(t *testing.T) {
	v := calc(t, "[1, 2, 3]", nil)
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Len(t, arr, 3)
}

func TestParseEmptyArrayLiteral(t *testing.T) {
	v := calc(t, "[]", nil)
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Empty(t, arr)
}

func TestParseBetween(t *testing.T) {
	v := calc(t, "5 BETWEEN 1 10", nil)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestParseNotPrefix(t *testing.T) {
	v := calc(t, "! true", nil)
	b, _ := v.AsBool()
	assert.False(t, b)
}

func TestParseNotWrappedBinary(t *testing.T) {
	v := calc(t, `"hello" ! CONTAINS "xyz"`, nil)
	b, _ := v.AsBool()
	assert.True(t, b, `"hello" does not contain "xyz", so NOT CONTAINS is true`)
}

func TestParseAndOrSpanEntireRemainder(t *testing.T) {
	v := calc(t, "true && 1 + 1 == 2", nil)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestParseCoerceDateTimeFoldsLiteralAtParseTime(t *testing.T) {
	node, err := Parse([]byte(`COERCE "2020-01-02T03:04:05Z" _datetime_`), stubExtractor{})
	require.NoError(t, err)
	_, isConst := node.(evalnode.CoercedConst)
	assert.True(t, isConst, "COERCE over a literal must fold to CoercedConst at parse time")
}

func TestParseCoerceDateTimeOverSelectorDoesNotFold(t *testing.T) {
	node, err := Parse([]byte(`COERCE .created_at _datetime_`), stubExtractor{})
	require.NoError(t, err)
	_, isConst := node.(evalnode.CoercedConst)
	assert.False(t, isConst, "COERCE over a non-literal selector cannot fold")
}

func TestParseCoerceComparison(t *testing.T) {
	v := calc(t, `COERCE "2020-01-02T03:04:05Z" _datetime_ > COERCE "2019-01-01T00:00:00Z" _datetime_`, nil)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestParseCoerceChaining(t *testing.T) {
	node, err := Parse([]byte(`COERCE .name _lowercase_, _uppercase_`), stubExtractor{fields: map[string]value.Value{
		"name": value.String("MiXeD"),
	}})
	require.NoError(t, err)
	v, err := node.Calculate(nil)
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "MIXED", s)
}

func TestParseEmptySourceIsError(t *testing.T) {
	_, err := Parse([]byte(""), stubExtractor{})
	assert.Error(t, err)
}

func TestParseTrailingOperatorIsError(t *testing.T) {
	_, err := Parse([]byte("1 +"), stubExtractor{})
	assert.Error(t, err)
}

func TestParseInvalidTokenAsValueIsError(t *testing.T) {
	_, err := Parse([]byte(")"), stubExtractor{})
	assert.Error(t, err)
}

func TestParseErrorCarriesSpan(t *testing.T) {
	_, err := Parse([]byte("1 +"), stubExtractor{})
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.GreaterOrEqual(t, perr.Start, 0)
}

func TestExpressionSafeForConcurrentUse(t *testing.T) {
	node, err := Parse([]byte(".n > 0"), stubExtractor{fields: map[string]value.Value{"n": value.Number(1)}})
	require.NoError(t, err)

	done := make(chan value.Value, 8)
	for i := 0; i < 8; i++ {
		go func() {
			v, err := node.Calculate(nil)
			require.NoError(t, err)
			done <- v
		}()
	}
	for i := 0; i < 8; i++ {
		b, _ := (<-done).AsBool()
		assert.True(t, b)
	}
}
