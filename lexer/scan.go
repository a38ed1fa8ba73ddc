package lexer

import (
	"github.com/474420502/docql/token"
)

// Lexer advances a position cursor through source bytes, producing one
// token at a time on demand.
type Lexer struct {
	src []byte
	pos int
}

// New creates a Lexer over src. src is never copied.
func New(src []byte) *Lexer {
	return &Lexer{src: src}
}

// NewString creates a Lexer over the bytes of s.
func NewString(s string) *Lexer {
	return New([]byte(s))
}

// Next returns the next token, or ok=false once the input is exhausted.
// Whitespace between tokens is skipped and never produces a token.
func (l *Lexer) Next() (tok token.Token, ok bool, err error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return token.Token{}, false, nil
	}

	start := l.pos
	kind, n, err := tokenizeSingle(l.src[start:])
	if err != nil {
		return token.Token{}, false, err
	}
	l.pos += n
	return token.Token{Kind: kind, Start: start, Len: n}, true, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && isASCIISpace(l.src[l.pos]) {
		l.pos++
	}
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isTerminator(b byte) bool {
	return isASCIISpace(b) || b == ')' || b == ']' || b == ','
}

// takeWhile consumes bytes from data while pred holds, returning the count
// consumed. It mirrors the reference lexer's take_while: zero bytes
// consumed is reported as "no match" via the ok result.
func takeWhile(data []byte, pred func(byte) bool) (n int, ok bool) {
	for n < len(data) && pred(data[n]) {
		n++
	}
	return n, n > 0
}

// tokenizeSingle lexes exactly one token from the front of data, returning
// its kind and the number of bytes it occupies.
func tokenizeSingle(data []byte) (token.Kind, int, error) {
	b := data[0]

	switch {
	case b == '=':
		if len(data) > 1 && data[1] == '=' {
			return token.Equals, 2, nil
		}
		return token.Equals, 1, nil

	case b == '+':
		if len(data) > 1 && isDigit(data[1]) {
			return tokenizeNumber(data)
		}
		return token.Add, 1, nil

	case b == '-':
		if len(data) > 1 && isDigit(data[1]) {
			return tokenizeNumber(data)
		}
		return token.Subtract, 1, nil

	case b == '*':
		return token.Multiply, 1, nil

	case b == '/':
		return token.Divide, 1, nil

	case b == '>':
		if len(data) > 1 && data[1] == '=' {
			return token.Gte, 2, nil
		}
		return token.Gt, 1, nil

	case b == '<':
		if len(data) > 1 && data[1] == '=' {
			return token.Lte, 2, nil
		}
		return token.Lt, 1, nil

	case b == '(':
		return token.OpenParen, 1, nil
	case b == ')':
		return token.CloseParen, 1, nil
	case b == '[':
		return token.OpenBracket, 1, nil
	case b == ']':
		return token.CloseBracket, 1, nil
	case b == ',':
		return token.Comma, 1, nil
	case b == '!':
		return token.Not, 1, nil

	case b == '"' || b == '\'':
		return tokenizeString(data, b)

	case b == '.':
		return tokenizeSelectorPath(data)

	case b == 't' || b == 'f':
		return tokenizeBool(data)

	case b == '&' && len(data) > 1 && data[1] == '&':
		return token.And, 2, nil

	case b == '|' && len(data) > 1 && data[1] == '|':
		return token.Or, 2, nil

	case b == 'O', b == 'I', b == 'S', b == 'E', b == 'B', b == 'C', b == 'N':
		return tokenizeKeyword(data)

	case b == '_':
		return tokenizeIdentifier(data)

	case isDigit(b):
		return tokenizeNumber(data)

	default:
		return token.Illegal, 0, lexErr(UnsupportedCharacter, string(b))
	}
}

// keywords maps the full literal spelling of each reserved word to its
// token kind. Resolution scans to the next terminator and does a single
// map lookup rather than inspecting fixed byte offsets, so adding a new
// keyword with a shared prefix (e.g. another CONTAINS_* variant) needs no
// changes here.
var keywords = map[string]token.Kind{
	"OR":           token.Or,
	"IN":           token.In,
	"STARTS_WITH":  token.StartsWith,
	"ENDS_WITH":    token.EndsWith,
	"BETWEEN":      token.Between,
	"NULL":         token.Null,
	"CONTAINS":     token.Contains,
	"CONTAINS_ANY": token.ContainsAny,
	"CONTAINS_ALL": token.ContainsAll,
	"COERCE":       token.Coerce,
}

// tokenizeKeyword resolves one of the upper-case reserved words. A keyword
// must be followed by whitespace, a structural terminator, or EOF; a
// recognizable prefix that isn't followed by a terminator is a lex error
// rather than silently falling through (e.g. "INSIDE" is not "IN").
func tokenizeKeyword(data []byte) (token.Kind, int, error) {
	n, ok := takeWhile(data, func(c byte) bool { return !isTerminator(c) })
	if !ok {
		return token.Illegal, 0, lexErr(InvalidKeyword, string(data))
	}
	word := string(data[:n])
	if kind, found := keywords[word]; found {
		return kind, n, nil
	}
	return token.Illegal, 0, lexErr(InvalidKeyword, word)
}

func tokenizeIdentifier(data []byte) (token.Kind, int, error) {
	n, ok := takeWhile(data, func(c byte) bool { return !isTerminator(c) })
	if !ok || n == 0 || data[n-1] != '_' {
		return token.Illegal, 0, lexErr(InvalidIdentifier, string(data))
	}
	return token.Identifier, n, nil
}

// tokenizeString scans a quoted string terminated by the same quote byte it
// opened with; a backslash escapes the quote character (and only the quote
// character — other escapes are left untouched for the parser to copy
// verbatim).
func tokenizeString(data []byte, quote byte) (token.Kind, int, error) {
	i := 1
	for i < len(data) {
		if data[i] == '\\' && i+1 < len(data) && data[i+1] == quote {
			i += 2
			continue
		}
		if data[i] == quote {
			return token.QuotedString, i + 1, nil
		}
		i++
	}
	return token.Illegal, 0, lexErr(UnterminatedString, string(data))
}

// tokenizeSelectorPath scans a ".foo.bar" selector: it runs from the
// leading '.' until whitespace, ')' or ']'.
func tokenizeSelectorPath(data []byte) (token.Kind, int, error) {
	n, ok := takeWhile(data[1:], func(c byte) bool {
		return !isASCIISpace(c) && c != ')' && c != ']'
	})
	if !ok {
		return token.Illegal, 0, lexErr(InvalidIdentifier, string(data))
	}
	return token.SelectorPath, n + 1, nil
}

func tokenizeBool(data []byte) (token.Kind, int, error) {
	n, ok := takeWhile(data, isASCIILetter)
	if !ok {
		return token.Illegal, 0, lexErr(InvalidBool, string(data))
	}
	switch string(data[:n]) {
	case "true":
		return token.BooleanTrue, n, nil
	case "false":
		return token.BooleanFalse, n, nil
	default:
		return token.Illegal, 0, lexErr(InvalidBool, string(data[:n]))
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// tokenizeNumber does not validate exponent syntax — it only rejects a
// second decimal point. Whether the resulting text actually parses as a
// binary64 is decided later, in the parser, where a failure surfaces as a
// parse error rather than a lex error (spec §4.1).
func tokenizeNumber(data []byte) (token.Kind, int, error) {
	dotSeen := false
	badNumber := false

	n, ok := takeWhile(data, func(c byte) bool {
		switch c {
		case '.':
			if dotSeen {
				badNumber = true
				return false
			}
			dotSeen = true
			return true
		case '-', '+', 'e', 'E':
			return true
		default:
			return isDigit(c)
		}
	})
	if !ok || badNumber {
		return token.Illegal, 0, lexErr(InvalidNumber, string(data))
	}
	return token.Number, n, nil
}
