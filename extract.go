package docql

import (
	"github.com/tidwall/gjson"

	"github.com/474420502/docql/value"
)

// GjsonExtractor is the default Extractor, backed by
// github.com/tidwall/gjson — the same library the teacher repo's own
// benchmarks already compare its hand-rolled path engine against. Paths
// handed to Extract directly may use gjson's `#(...)` filter syntax (as in
// "array_map.#(a==1).a"); a selector written in expression source ends at
// its first ')' or ']', so such a filter cannot be reached through Parse.
type GjsonExtractor struct{}

// Extract maps the gjson.Result found at path within doc into a Value,
// returning Null for a missing path. Arrays and objects recurse.
func (GjsonExtractor) Extract(doc []byte, path string) (value.Value, error) {
	res := gjson.GetBytes(doc, path)
	return fromGjson(res), nil
}

func fromGjson(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.Null
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		return value.Number(r.Float())
	case gjson.String:
		return value.String(r.String())
	case gjson.JSON:
		if r.IsArray() {
			elems := r.Array()
			vals := make([]value.Value, len(elems))
			for i, e := range elems {
				vals[i] = fromGjson(e)
			}
			return value.Array(vals)
		}
		if r.IsObject() {
			fields := map[string]value.Value{}
			r.ForEach(func(k, v gjson.Result) bool {
				fields[k.String()] = fromGjson(v)
				return true
			})
			return value.Object(fields)
		}
		return value.Null
	default:
		if !r.Exists() {
			return value.Null
		}
		return value.Null
	}
}
