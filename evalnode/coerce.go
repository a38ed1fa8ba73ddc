package evalnode

import (
	"strings"

	"github.com/araddon/dateparse"

	"github.com/474420502/docql/evalerr"
	"github.com/474420502/docql/value"
)

// CoerceDateTime implements `COERCE <v> _datetime_`. A String is parsed as
// an absolute instant using dateparse.ParseAny, the same flexible-format
// parser the wider example pack reaches for when a single format can't be
// assumed (github.com/araddon/dateparse, as used by the qlbridge SQL
// engine in the retrieved reference pack); a parse failure yields Null
// rather than an error. Null coerces to Null. Any other input is an error.
type CoerceDateTime struct{ Value Node }

func (n CoerceDateTime) Calculate(doc []byte) (value.Value, error) {
	v, err := n.Value.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	if v.IsNull() {
		return v, nil
	}
	s, ok := v.AsString()
	if !ok {
		return value.Value{}, evalerr.Coerce(v.String(), "datetime")
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return value.Null, nil
	}
	return value.DateTime(t), nil
}

// CoerceLowercase implements `COERCE <v> _lowercase_`: String → String
// using Unicode-aware case folding (strings.ToLower already is).
type CoerceLowercase struct{ Value Node }

func (n CoerceLowercase) Calculate(doc []byte) (value.Value, error) {
	v, err := n.Value.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	s, ok := v.AsString()
	if !ok {
		return value.Value{}, evalerr.Coerce(v.String(), "lowercase")
	}
	return value.String(strings.ToLower(s)), nil
}

// CoerceUppercase implements `COERCE <v> _uppercase_`.
type CoerceUppercase struct{ Value Node }

func (n CoerceUppercase) Calculate(doc []byte) (value.Value, error) {
	v, err := n.Value.Calculate(doc)
	if err != nil {
		return value.Value{}, err
	}
	s, ok := v.AsString()
	if !ok {
		return value.Value{}, evalerr.Coerce(v.String(), "uppercase")
	}
	return value.String(strings.ToUpper(s)), nil
}
