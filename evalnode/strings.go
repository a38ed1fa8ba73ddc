package evalnode

import (
	"strings"

	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// StartsWith implements STARTS_WITH: String/String only.
type StartsWith struct{ Left, Right Node }

func (n StartsWith) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	ls, lok := l.AsString()
	rs, rok := r.AsString()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "STARTS_WITH", r.String())
	}
	return value.Bool(strings.HasPrefix(ls, rs)), nil
}

// EndsWith implements ENDS_WITH: String/String only.
type EndsWith struct{ Left, Right Node }

func (n EndsWith) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	ls, lok := l.AsString()
	rs, rok := r.AsString()
	if !lok || !rok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "ENDS_WITH", r.String())
	}
	return value.Bool(strings.HasSuffix(ls, rs)), nil
}

// Contains implements CONTAINS: a String contains a substring, or an Array
// contains an element by structural equality.
type Contains struct{ Left, Right Node }

func (n Contains) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	if ls, ok := l.AsString(); ok {
		if rs, ok := r.AsString(); ok {
			return value.Bool(strings.Contains(ls, rs)), nil
		}
	}
	if arr, ok := l.AsArray(); ok {
		return value.Bool(arrayContains(arr, r)), nil
	}
	return value.Value{}, evalerr.TypeComparison(l.String(), "CONTAINS", r.String())
}

func arrayContains(arr []value.Value, v value.Value) bool {
	for _, e := range arr {
		if e.Equal(v) {
			return true
		}
	}
	return false
}

// In implements IN: `value IN array`, membership by structural equality.
// Any non-Array right operand is a type error.
type In struct{ Left, Right Node }

func (n In) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	arr, ok := r.AsArray()
	if !ok {
		return value.Value{}, evalerr.TypeComparison(l.String(), "IN", r.String())
	}
	return value.Bool(arrayContains(arr, l)), nil
}

// ContainsAny implements CONTAINS_ANY over four operand-kind pairings:
// (String,String) at character granularity, (Array,Array) by element
// equality, (Array,String) treating each rune of the string as a
// single-character String, and (String,Array) testing whether any array
// element is a String that is a substring of the left string.
type ContainsAny struct{ Left, Right Node }

func (n ContainsAny) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	return containsMatch(l, r, "CONTAINS_ANY", anyMatch)
}

// ContainsAll implements CONTAINS_ALL with the same four pairings as
// ContainsAny, requiring every element/rune on the right to match instead
// of just one. An empty right operand is vacuously true.
type ContainsAll struct{ Left, Right Node }

func (n ContainsAll) Calculate(doc []byte) (value.Value, error) {
	l, r, err := evalPair(n.Left, n.Right, doc)
	if err != nil {
		return value.Value{}, err
	}
	return containsMatch(l, r, "CONTAINS_ALL", allMatch)
}

func anyMatch(n int, pred func(int) bool) bool {
	for i := 0; i < n; i++ {
		if pred(i) {
			return true
		}
	}
	return false
}

func allMatch(n int, pred func(int) bool) bool {
	for i := 0; i < n; i++ {
		if !pred(i) {
			return false
		}
	}
	return true
}

func containsMatch(l, r value.Value, op string, quantify func(int, func(int) bool) bool) (value.Value, error) {
	if ls, ok := l.AsString(); ok {
		if rs, ok := r.AsString(); ok {
			lRunes := []rune(ls)
			rRunes := []rune(rs)
			hasRune := func(set []rune, target rune) bool {
				for _, c := range set {
					if c == target {
						return true
					}
				}
				return false
			}
			return value.Bool(quantify(len(rRunes), func(i int) bool {
				return hasRune(lRunes, rRunes[i])
			})), nil
		}
		if rArr, ok := r.AsArray(); ok {
			return value.Bool(quantify(len(rArr), func(i int) bool {
				s, ok := rArr[i].AsString()
				return ok && strings.Contains(ls, s)
			})), nil
		}
	}
	if lArr, ok := l.AsArray(); ok {
		if rArr, ok := r.AsArray(); ok {
			return value.Bool(quantify(len(rArr), func(i int) bool {
				return arrayContains(lArr, rArr[i])
			})), nil
		}
		if rs, ok := r.AsString(); ok {
			rRunes := []rune(rs)
			return value.Bool(quantify(len(rRunes), func(i int) bool {
				return arrayContains(lArr, value.String(string(rRunes[i])))
			})), nil
		}
	}
	return value.Value{}, evalerr.TypeComparison(l.String(), op, r.String())
}
