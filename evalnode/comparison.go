package evalnode

import (
	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// Eq implements `==` (and its alias `=`): full structural equality across
// every Value variant, including Null == Null ⇒ true and Null compared to
// anything else ⇒ false. It never errors.
type Eq struct{ Left, Right Node }

func (n Eq) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(l.Equal(r)), nil
}

type ordering struct {
	Left, Right Node
	symbol      string
	accept      func(cmp int) bool
}

func (o ordering) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(o.Left, o.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	cmp, ok := value.Compare(l, r)
	if !ok {
		return value.Value{}, evalerr.TypeComparison(l.String(), o.symbol, r.String())
	}
	return value.Bool(o.accept(cmp)), nil
}

// Gt implements `>` over String/String, Number/Number or DateTime/DateTime.
type Gt struct{ Left, Right Node }

func (n Gt) Calculate(doc []byte) (value.Value, error) {
	return ordering{n.Left, n.Right, ">", func(c int) bool { return c > 0 }}.Calculate(doc)
}

// Gte implements `>=`.
type Gte struct{ Left, Right Node }

func (n Gte) Calculate(doc []byte) (value.Value, error) {
	return ordering{n.Left, n.Right, ">=", func(c int) bool { return c >= 0 }}.Calculate(doc)
}

// Lt implements `<`.
type Lt struct{ Left, Right Node }

func (n Lt) Calculate(doc []byte) (value.Value, error) {
	return ordering{n.Left, n.Right, "<", func(c int) bool { return c < 0 }}.Calculate(doc)
}

// Lte implements `<=`.
type Lte struct{ Left, Right Node }

func (n Lte) Calculate(doc []byte) (value.Value, error) {
	return ordering{n.Left, n.Right, "<=", func(c int) bool { return c <= 0 }}.Calculate(doc)
}
