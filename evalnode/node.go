// Package evalnode implements the tree of expression evaluator nodes: one
// type per operator plus the literal and selector leaves, each exposing a
// single Calculate method, in the same shape as the teacher repo's
// core.Node interface (one big interface, one struct per JSON kind under
// internal/engine/*_node.go) — generalized here from "JSON node" to
// "expression result".
package evalnode

import (
	"github.com/474420502/docql/value"
)

// Node is a parsed sub-expression: given the raw document bytes it produces
// a Value or an evaluation error. Implementations own their children
// exclusively; the tree holds no reference to the original source text
// after parsing completes.
type Node interface {
	Calculate(doc []byte) (value.Value, error)
}

// Extractor is the sole bridge from a SelectorPath node back to the
// document: it maps (document bytes, path) to a Value the same way the
// specification's opaque `extract` function does. docql.GjsonExtractor is
// the bundled default; embedders may supply their own to plug in a
// different document store.
type Extractor interface {
	Extract(doc []byte, path string) (value.Value, error)
}

// literal nodes: their Calculate never touches doc.

type NullLiteral struct{}

func (NullLiteral) Calculate([]byte) (value.Value, error) { return value.Null, nil }

type StringLiteral struct{ S string }

func (n StringLiteral) Calculate([]byte) (value.Value, error) { return value.String(n.S), nil }

type NumberLiteral struct{ N float64 }

func (n NumberLiteral) Calculate([]byte) (value.Value, error) { return value.Number(n.N), nil }

type BoolLiteral struct{ B bool }

func (n BoolLiteral) Calculate([]byte) (value.Value, error) { return value.Bool(n.B), nil }

// ArrayLiteral evaluates each element expression in order and collects the
// results; an empty literal evaluates to Array([]).
type ArrayLiteral struct{ Elems []Node }

func (n ArrayLiteral) Calculate(doc []byte) (value.Value, error) {
	elems := make([]value.Value, len(n.Elems))
	for i, e := range n.Elems {
		v, err := e.Calculate(doc)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.Array(elems), nil
}

// SelectorPath is the sole node that reads the document: it calls out to an
// Extractor with the dotted path text (without the leading '.').
type SelectorPath struct {
	Path      string
	Extractor Extractor
}

func (n SelectorPath) Calculate(doc []byte) (value.Value, error) {
	return n.Extractor.Extract(doc, n.Path)
}

// CoercedConst holds a value folded at parse time (currently only
// `COERCE <literal> _datetime_`); it behaves exactly like a runtime COERCE
// node applied to the same literal, just without repeating the conversion
// on every Calculate call.
type CoercedConst struct{ V value.Value }

func (n CoercedConst) Calculate([]byte) (value.Value, error) { return n.V, nil }
