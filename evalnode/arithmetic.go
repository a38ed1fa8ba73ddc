package evalnode

import (
	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// Add implements `+`: Number+Number, String+String (concatenation), and,
// uniquely among the arithmetic operators, Null propagation when exactly
// one side is a Number or a String.
type Add struct{ Left, Right Node }

func (n Add) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}

	switch {
	case l.Kind() == value.KindString && r.Kind() == value.KindString:
		ls, _ := l.AsString()
		rs, _ := r.AsString()
		return value.String(ls + rs), nil
	case l.Kind() == value.KindNumber && r.Kind() == value.KindNumber:
		ln, _ := l.AsNumber()
		rn, _ := r.AsNumber()
		return value.Number(ln + rn), nil
	case l.Kind() == value.KindString && r.IsNull():
		return l, nil
	case l.IsNull() && r.Kind() == value.KindString:
		return r, nil
	case l.Kind() == value.KindNumber && r.IsNull():
		return l, nil
	case l.IsNull() && r.Kind() == value.KindNumber:
		return r, nil
	default:
		return value.Value{}, evalerr.TypeComparison(l.String(), "+", r.String())
	}
}

// Sub implements `-`: Number-Number only. Unlike Add, Null is not
// propagated — the specification calls out Sub/Mul/Div on Null as an error.
type Sub struct{ Left, Right Node }

func (n Sub) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	ln, lok := l.AsNumber()
	rn, rok := r.AsNumber()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "-", r.String())
	}
	return value.Number(ln - rn), nil
}

// Mult implements `*`: Number*Number only.
type Mult struct{ Left, Right Node }

func (n Mult) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	ln, lok := l.AsNumber()
	rn, rok := r.AsNumber()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "*", r.String())
	}
	return value.Number(ln * rn), nil
}

// Div implements `/`: Number/Number only. Division by zero yields the
// IEEE-754 infinity or NaN produced by Go's float64 division; it is not
// treated as an error.
type Div struct{ Left, Right Node }

func (n Div) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	ln, lok := l.AsNumber()
	rn, rok := r.AsNumber()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "/", r.String())
	}
	return value.Number(ln / rn), nil
}

// evalPair evaluates both operands unconditionally — the specification
// requires no short-circuiting anywhere in the operator matrix, arithmetic
// included, so that type errors surface deterministically regardless of
// evaluation order bugs elsewhere in the tree.
func evalPair(left, right Node, doc []byte) (value.Value, value.Value, error) {
	l, lerr := left.Calculate(doc)
	r, rerr := right.Calculate(doc)
	if lerr != nil {
		return value.Value{}, value.Value{}, lerr
	}
	if rerr != nil {
		return value.Value{}, value.Value{}, rerr
	}
	return l, r, nil
}
