package docql

import (
	"github.com/474420502/docql/evalnode"
	"github.com/474420502/docql/parser"
	"github.com/474420502/docql/value"
)

// Extractor is the bridge SelectorPath nodes use to pull a subtree out of a
// document. It is the Go expression of the specification's opaque
// `extract(document_bytes, path) → JsonValue` collaborator.
type Extractor = evalnode.Extractor

// Expression is a parsed, immutable expression tree. It is stateless and
// safe to share between goroutines calling Calculate concurrently, provided
// its Extractor is itself safe for concurrent use.
type Expression struct {
	root evalnode.Node
}

// Calculate applies the expression to document, the raw JSON bytes of one
// record, producing a typed Value or an evaluation error.
func (e *Expression) Calculate(document []byte) (value.Value, error) {
	return e.root.Calculate(document)
}

// config collects ParseOption settings.
type config struct {
	extractor Extractor
}

// ParseOption customizes how Parse builds an Expression.
type ParseOption func(*config)

// WithExtractor overrides the default gjson-backed Extractor, letting an
// embedder plug in its own document store's path engine.
func WithExtractor(e Extractor) ParseOption {
	return func(c *config) { c.extractor = e }
}

// Parse tokenizes and compiles source into an Expression tree. Source may
// be a string or a []byte.
func Parse[T string | []byte](source T, opts ...ParseOption) (*Expression, error) {
	cfg := config{extractor: GjsonExtractor{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := parser.Parse([]byte(source), cfg.extractor)
	if err != nil {
		return nil, err
	}
	return &Expression{root: root}, nil
}
