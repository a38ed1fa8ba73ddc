// Package evalerr defines the evaluation-time error family shared by every
// evalnode.Node implementation, so the two kinds named in the specification
// (§7) have exactly one home instead of one ad-hoc fmt.Errorf per operator.
package evalerr

import "fmt"

// Kind distinguishes the two evaluation error families the specification
// names: a binary/ternary operator applied to an unsupported operand-type
// combination, and a COERCE applied to an incompatible value.
type Kind int

const (
	UnsupportedTypeComparison Kind = iota
	UnsupportedCoerce
)

func (k Kind) String() string {
	switch k {
	case UnsupportedTypeComparison:
		return "unsupported type comparison"
	case UnsupportedCoerce:
		return "unsupported coerce"
	default:
		return "eval error"
	}
}

// Error is the concrete error type every evalnode.Node returns on failure.
// Propagation is uniform throughout the tree: the first Error aborts
// evaluation and is returned to the caller unwrapped further.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// TypeComparison builds an UnsupportedTypeComparison error, formatting the
// operator between its two rendered operands the way the reference
// implementation's Display-based error messages do (e.g. "3 + x"; String
// operands are rendered without quotes).
func TypeComparison(left, op, right string) error {
	return &Error{Kind: UnsupportedTypeComparison, Detail: left + " " + op + " " + right}
}

// TypeComparisonUnary builds an UnsupportedTypeComparison error for a
// single-operand operator such as NOT.
func TypeComparisonUnary(op, operand string) error {
	return &Error{Kind: UnsupportedTypeComparison, Detail: operand + " for " + op}
}

// Coerce builds an UnsupportedCoerce error.
func Coerce(value, target string) error {
	return &Error{Kind: UnsupportedCoerce, Detail: value + " COERCE " + target}
}
