package evalnode

import (
	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// Between implements the ternary `<value> BETWEEN <lo> <hi>`: a strict
// interval test over String/String/String, Number/Number/Number or
// DateTime/DateTime/DateTime. If any of the three operands is Null the
// result is Bool(false) rather than an error — the one other implicit
// null-propagation rule besides additive arithmetic.
type Between struct {
	Value, Low, High Node
}

func (n Between) Calculate(doc []byte) (value.Value, error) {
	v, err := n.Value.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	lo, err := n.Low.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	hi, err := n.High.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}

	if v.IsNull() || lo.IsNull() || hi.IsNull() {
		return value.Bool(false), nil
	}

	cmpLo, okLo := value.Compare(v, lo)
	cmpHi, okHi := value.Compare(v, hi)
	if !okLo || !okHi {
		return value.Value{}, evalerr.TypeComparison(v.String(), "BETWEEN", lo.String()+" "+hi.String())
	}
	return value.Bool(cmpLo > 0 && cmpHi < 0), nil
}
