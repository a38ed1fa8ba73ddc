// Package docql implements the expression sub-language of a small document
// store query system: a tokenizer, a recursive-descent parser that compiles
// source text into a tree of evaluator nodes, and an evaluator that applies
// that tree to arbitrary JSON payloads to produce a typed value.Value.
//
// The outer command grammar that merely recognizes CREATE/DROP/GET/PUT-style
// command shapes and hands off a quoted expression fragment to Parse, the
// host document store, and the JSON path engine backing the default
// Extractor are treated as external collaborators — this package is the
// expression core they embed.
//
//	expr, err := docql.Parse(`.price > 10 && .in_stock == true`)
//	if err != nil {
//		// ParseError or a wrapped lexer error
//	}
//	v, err := expr.Calculate(documentBytes)
package docql
