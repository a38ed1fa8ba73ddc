// Package parser drives the lexer and builds an evalnode.Node tree: a
// shift/reduce-style left-to-right descent with no operator precedence,
// following the same value/operator split the reference expression parser
// uses, adapted into idiomatic Go (explicit error returns, a slice of typed
// token.Token instead of a fallible iterator).
package parser

import (
	"strconv"

	"github.com/474420502/docql/evalnode"
	"github.com/474420502/docql/lexer"
	"github.com/474420502/docql/token"
)

// Parser consumes a pre-scanned token stream and builds an expression tree.
type Parser struct {
	src       []byte
	toks      []token.Token
	pos       int
	extractor evalnode.Extractor
}

// New tokenizes src eagerly (lex errors halt iteration per spec §4.1) and
// returns a Parser ready to build a tree via Parse.
func New(src []byte, extractor evalnode.Extractor) (*Parser, error) {
	toks, err := tokenizeAll(src)
	if err != nil {
		return nil, wrapLexErr(err)
	}
	return &Parser{src: src, toks: toks, extractor: extractor}, nil
}

func tokenizeAll(src []byte) ([]token.Token, error) {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Parse builds the full expression tree, erroring if the source yields no
// expression at all (e.g. empty input).
func Parse(src []byte, extractor evalnode.Extractor) (evalnode.Node, error) {
	p, err := New(src, extractor)
	if err != nil {
		return nil, err
	}
	result, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errGeneral("no expression results found")
	}
	return result, nil
}

func (p *Parser) next() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) text(t token.Token) string { return t.Text(p.src) }

// parseExpression is the shared driver for both the top-level expression
// and every parenthesized sub-expression: it folds a leading value with
// zero or more following operators, left to right, stopping at a
// CloseParen (which it consumes itself) or at end of input.
func (p *Parser) parseExpression() (evalnode.Node, error) {
	var current evalnode.Node

	for {
		tok, ok := p.next()
		if !ok {
			return current, nil
		}

		if current != nil {
			if tok.Kind == token.CloseParen {
				return current, nil
			}
			next, err := p.parseOperation(tok, current)
			if err != nil {
				return nil, err
			}
			current = next
		} else {
			v, err := p.parseValue(tok)
			if err != nil {
				return nil, err
			}
			current = v
		}
	}
}

// nextOperatorToken fetches the token immediately following an operator,
// erroring with the operator's own span if the input ends first.
func (p *Parser) nextOperatorToken(opToken token.Token) (token.Token, error) {
	if t, ok := p.next(); ok {
		return t, nil
	}
	return token.Token{}, errAt(opToken.Start, opToken.End(), "no value found after operation: %s", p.text(opToken))
}

func (p *Parser) parseValue(tok token.Token) (evalnode.Node, error) {
	switch tok.Kind {
	case token.OpenBracket:
		return p.parseArray()

	case token.OpenParen:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, errAt(tok.Start, tok.End(), "expression after open parenthesis '(' ends unexpectedly")
		}
		return expr, nil

	case token.SelectorPath:
		path := p.src[tok.Start+1 : tok.End()]
		return evalnode.SelectorPath{Path: string(path), Extractor: p.extractor}, nil

	case token.QuotedString:
		s := p.src[tok.Start+1 : tok.End()-1]
		return evalnode.StringLiteral{S: string(s)}, nil

	case token.Number:
		n, err := strconv.ParseFloat(p.text(tok), 64)
		if err != nil {
			return nil, &Error{Msg: "invalid numeric literal: " + p.text(tok), Start: tok.Start, End: tok.End(), Cause: err}
		}
		return evalnode.NumberLiteral{N: n}, nil

	case token.BooleanTrue:
		return evalnode.BoolLiteral{B: true}, nil

	case token.BooleanFalse:
		return evalnode.BoolLiteral{B: false}, nil

	case token.Null:
		return evalnode.NullLiteral{}, nil

	case token.Coerce:
		return p.parseCoerce(tok)

	case token.Not:
		next, err := p.nextOperatorToken(tok)
		if err != nil {
			return nil, err
		}
		v, err := p.parseValue(next)
		if err != nil {
			return nil, err
		}
		return evalnode.Not{Value: v}, nil

	default:
		return nil, errAt(tok.Start, tok.End(), "token is not a valid value: %s", tok.Kind)
	}
}

// parseArray reads a `[` already consumed by the caller through to the
// matching `]`. Commas are optional separators between element values.
func (p *Parser) parseArray() (evalnode.Node, error) {
	var elems []evalnode.Node
	for {
		tok, ok := p.next()
		if !ok {
			return nil, errGeneral("unclosed Array '['")
		}
		switch tok.Kind {
		case token.CloseBracket:
			return evalnode.ArrayLiteral{Elems: elems}, nil
		case token.Comma:
			continue
		default:
			v, err := p.parseValue(tok)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
	}
}

// literalEligible marks the token kinds constant folding may fire on (the
// argument to a top-level COERCE, not an arbitrary sub-expression).
func literalEligible(k token.Kind) bool {
	switch k {
	case token.QuotedString, token.Number, token.BooleanTrue, token.BooleanFalse, token.Null:
		return true
	default:
		return false
	}
}

// parseCoerce reads `COERCE <value> _ident_ (, _ident_)*`. _datetime_ on an
// eligible literal is folded into a CoercedConst at parse time; _lowercase_
// and _uppercase_ are never folded since they're cheap enough at
// evaluation time and folding them would change no observable behavior.
func (p *Parser) parseCoerce(coerceTok token.Token) (evalnode.Node, error) {
	valueTok, err := p.nextOperatorToken(coerceTok)
	if err != nil {
		return nil, err
	}
	constEligible := literalEligible(valueTok.Kind)

	expr, err := p.parseValue(valueTok)
	if err != nil {
		return nil, err
	}

	for {
		identTok, ok := p.next()
		if !ok {
			return nil, errAt(coerceTok.Start, coerceTok.End(), "no identifier after value for: COERCE")
		}
		if identTok.Kind != token.Identifier {
			return nil, errAt(identTok.Start, identTok.End(), "COERCE missing data type identifier, found instead: %s", p.text(identTok))
		}

		switch p.text(identTok) {
		case "_datetime_":
			dt := evalnode.CoerceDateTime{Value: expr}
			if constEligible {
				v, err := dt.Calculate(nil)
				if err != nil {
					return nil, err
				}
				expr = evalnode.CoercedConst{V: v}
			} else {
				expr = dt
			}
		case "_lowercase_":
			expr = evalnode.CoerceLowercase{Value: expr}
		case "_uppercase_":
			expr = evalnode.CoerceUppercase{Value: expr}
		default:
			return nil, errAt(identTok.Start, identTok.End(), "invalid COERCE data type %q", p.text(identTok))
		}

		if next, ok := p.peek(); ok && next.Kind == token.Comma {
			p.pos++
			continue
		}
		break
	}
	return expr, nil
}

func (p *Parser) parseOperation(tok token.Token, current evalnode.Node) (evalnode.Node, error) {
	switch tok.Kind {
	case token.Add:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Add{Left: current, Right: right}, nil

	case token.Subtract:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Sub{Left: current, Right: right}, nil

	case token.Multiply:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Mult{Left: current, Right: right}, nil

	case token.Divide:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Div{Left: current, Right: right}, nil

	case token.Equals:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Eq{Left: current, Right: right}, nil

	case token.Gt:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Gt{Left: current, Right: right}, nil

	case token.Gte:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Gte{Left: current, Right: right}, nil

	case token.Lt:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Lt{Left: current, Right: right}, nil

	case token.Lte:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Lte{Left: current, Right: right}, nil

	case token.StartsWith:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.StartsWith{Left: current, Right: right}, nil

	case token.EndsWith:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.EndsWith{Left: current, Right: right}, nil

	case token.In:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.In{Left: current, Right: right}, nil

	case token.Contains:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.Contains{Left: current, Right: right}, nil

	case token.ContainsAny:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.ContainsAny{Left: current, Right: right}, nil

	case token.ContainsAll:
		right, err := p.rightValue(tok)
		if err != nil {
			return nil, err
		}
		return evalnode.ContainsAll{Left: current, Right: right}, nil

	case token.Between:
		loTok, err := p.nextOperatorToken(tok)
		if err != nil {
			return nil, err
		}
		lo, err := p.parseValue(loTok)
		if err != nil {
			return nil, err
		}
		hiTok, err := p.nextOperatorToken(tok)
		if err != nil {
			return nil, err
		}
		hi, err := p.parseValue(hiTok)
		if err != nil {
			return nil, err
		}
		return evalnode.Between{Value: current, Low: lo, High: hi}, nil

	case token.Or:
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, errAt(tok.Start, tok.End(), "invalid operation after ||")
		}
		return evalnode.Or{Left: current, Right: right}, nil

	case token.And:
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, errAt(tok.Start, tok.End(), "invalid operation after &&")
		}
		return evalnode.And{Left: current, Right: right}, nil

	case token.Not:
		next, err := p.nextOperatorToken(tok)
		if err != nil {
			return nil, err
		}
		wrapped, err := p.parseOperation(next, current)
		if err != nil {
			return nil, err
		}
		if wrapped == nil {
			return nil, errAt(tok.Start, tok.End(), "invalid operation after !")
		}
		return evalnode.Not{Value: wrapped}, nil

	case token.CloseBracket:
		return current, nil

	default:
		return nil, errAt(tok.Start, tok.End(), "invalid operation: %s", tok.Kind)
	}
}

// rightValue reads the single value following a binary operator.
func (p *Parser) rightValue(opTok token.Token) (evalnode.Node, error) {
	next, err := p.nextOperatorToken(opTok)
	if err != nil {
		return nil, err
	}
	return p.parseValue(next)
}
