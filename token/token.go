// Package token defines the lexical tokens produced by the docql lexer.
package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Illegal Kind = iota

	SelectorPath
	QuotedString
	Number
	BooleanTrue
	BooleanFalse
	Null
	Identifier

	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Comma

	// Equals is produced by both "=" and "==" — the two spellings are
	// aliases and the parser never distinguishes between them.
	Equals
	Add
	Subtract
	Multiply
	Divide
	Gt
	Gte
	Lt
	Lte
	Not
	And
	Or
	Contains
	ContainsAny
	ContainsAll
	In
	Between
	StartsWith
	EndsWith
	Coerce
)

var names = map[Kind]string{
	Illegal:       "ILLEGAL",
	SelectorPath:  "SelectorPath",
	QuotedString:  "QuotedString",
	Number:        "Number",
	BooleanTrue:   "BooleanTrue",
	BooleanFalse:  "BooleanFalse",
	Null:          "Null",
	Identifier:    "Identifier",
	OpenParen:     "(",
	CloseParen:    ")",
	OpenBracket:   "[",
	CloseBracket:  "]",
	Comma:         ",",
	Equals:        "Equals",
	Add:           "Add",
	Subtract:      "Subtract",
	Multiply:      "Multiply",
	Divide:        "Divide",
	Gt:            "Gt",
	Gte:           "Gte",
	Lt:            "Lt",
	Lte:           "Lte",
	Not:           "Not",
	And:           "And",
	Or:            "Or",
	Contains:      "Contains",
	ContainsAny:   "ContainsAny",
	ContainsAll:   "ContainsAll",
	In:            "In",
	Between:       "Between",
	StartsWith:    "StartsWith",
	EndsWith:      "EndsWith",
	Coerce:        "Coerce",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a single lexed token. It never owns text: the parser slices the
// original source by [Start, Start+Len).
type Token struct {
	Kind  Kind
	Start int
	Len   int
}

// End returns the exclusive end offset of the token within its source.
func (t Token) End() int { return t.Start + t.Len }

// Text slices the token's exact source text out of src.
func (t Token) Text(src []byte) string {
	return string(src[t.Start:t.End()])
}
