package evalnode

import (
	"time"

	"github.com/474420502/docql/value"
)

func num(n float64) Node   { return NumberLiteral{N: n} }
func str(s string) Node    { return StringLiteral{S: s} }
func nullNode() Node       { return NullLiteral{} }
func boolNode(b bool) Node { return BoolLiteral{B: b} }
func arr(elems ...Node) Node {
	return ArrayLiteral{Elems: elems}
}
func dtNode(t time.Time) Node { return CoercedConst{V: value.DateTime(t)} }

func extractorOf(v value.Value) Extractor {
	return constExtractor{v}
}

type constExtractor struct{ v value.Value }

func (c constExtractor) Extract([]byte, string) (value.Value, error) { return c.v, nil }
