package parser

import "fmt"

// Error is a parse-time error: well-formed tokens arranged in an
// unexpected shape. It carries the byte span of the token that triggered
// the failure (or (-1,-1) when no single token is to blame, e.g. an empty
// expression) alongside a human-readable message.
type Error struct {
	Msg   string
	Start int
	End   int
	// Cause holds a wrapped lexer error when the failure originated there,
	// or a strconv error when numeric text failed to parse as binary64.
	Cause error
}

func (e *Error) Error() string {
	if e.Start >= 0 {
		return fmt.Sprintf("parse error at [%d,%d): %s", e.Start, e.End, e.Msg)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

func errAt(start, end int, format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Start: start, End: end}
}

func errGeneral(format string, args ...interface{}) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Start: -1, End: -1}
}

func wrapLexErr(err error) error {
	return &Error{Msg: "lex error: " + err.Error(), Start: -1, End: -1, Cause: err}
}
