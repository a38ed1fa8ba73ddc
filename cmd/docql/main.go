// Command docql evaluates a single expression against a JSON document and
// prints the resulting value as JSON. It exists to exercise the full
// lex → parse → evaluate pipeline end to end the way the teacher repo's own
// cmd/debug_query does for its JSON path engine.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/474420502/docql"
)

func main() {
	var (
		exprText = pflag.StringP("expr", "e", "", "expression to evaluate, e.g. '.price > 10'")
		docText  = pflag.StringP("doc", "d", "{}", "JSON document to evaluate against")
		verbose  = pflag.BoolP("verbose", "v", false, "log timing information to stderr")
	)
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel)
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	if *exprText == "" {
		logger.Fatal().Msg("--expr is required")
	}

	start := time.Now()
	expr, err := docql.Parse(*exprText)
	if err != nil {
		logger.Fatal().Err(err).Str("expr", *exprText).Msg("parse failed")
	}
	logger.Info().Dur("parse_took", time.Since(start)).Msg("parsed expression")

	start = time.Now()
	result, err := expr.Calculate([]byte(*docText))
	if err != nil {
		logger.Fatal().Err(err).Msg("evaluation failed")
	}
	logger.Info().Dur("eval_took", time.Since(start)).Msg("evaluated expression")

	out, err := json.Marshal(result)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to marshal result")
	}
	fmt.Println(string(out))
}
