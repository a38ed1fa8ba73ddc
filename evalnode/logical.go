package evalnode

import (
	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// And implements `&&`. Both operands are always evaluated — the
// specification forbids short-circuiting so that type-error reporting
// stays stable regardless of which side is cheaper to compute.
type And struct{ Left, Right Node }

func (n And) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	lb, lok := l.AsBool()
	rb, rok := r.AsBool()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "&&", r.String())
	}
	return value.Bool(lb && rb), nil
}

// Or implements `||`. Like And, both operands are always evaluated.
type Or struct{ Left, Right Node }

func (n Or) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	lb, lok := l.AsBool()
	rb, rok := r.AsBool()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "||", r.String())
	}
	return value.Bool(lb || rb), nil
}

// Not implements both the prefix (`! <value>`) and the NOT-wrapped binary
// forms (`<expr> ! <op> <rhs>`, e.g. "NOT CONTAINS"): it negates whatever
// Bool its single child produces.
type Not struct{ Value Node }

func (n Not) Calculate(doc []byte) (value.Value, error) {
	v, err := n.Value.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	b, ok := v.AsBool()
	if !ok {
		return value.Value{}, evalerr.TypeComparisonUnary("!", v.String())
	}
	return value.Bool(!b), nil
}
