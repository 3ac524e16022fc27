package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CanonicalID renders a decoded JSON id as text. String ids are returned as-is;
// numeric ids are normalised through decimal so 7 and 7.0 match.
func CanonicalID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		d, err := decimal.NewFromString(id.String())
		if err != nil {
			return id.String()
		}
		return d.String()
	case float64:
		return decimal.NewFromFloat(id).String()
	case int:
		return decimal.NewFromInt(int64(id)).String()
	case int64:
		return decimal.NewFromInt(id).String()
	default:
		return fmt.Sprintf("%v", id)
	}
}

// usableID reports whether a decoded id identifies a record. Zero values do not.
func usableID(v interface{}) bool {
	switch id := v.(type) {
	case nil:
		return false
	case bool:
		return id
	case string:
		return id != ""
	}
	if d, ok := toDecimal(v); ok {
		return !d.IsZero()
	}
	return true
}

// FieldEqual reports whether a stored value equals the submitted one.
// Numeric fields compare by decimal value; everything else must match exactly
// in both type and content, so a missing field never matches.
func FieldEqual(field string, expected, actual interface{}) bool {
	if actual == nil {
		return expected == nil
	}
	if NumericFields[field] {
		want, ok := toDecimal(expected)
		if !ok {
			return false
		}
		got, ok := toDecimal(actual)
		if !ok {
			return false
		}
		return want.Equal(got)
	}
	want, ok := expected.(string)
	if !ok {
		return fmt.Sprintf("%v", expected) == fmt.Sprintf("%v", actual)
	}
	got, ok := actual.(string)
	return ok && want == got
}

// toDecimal converts a JSON number (decoded or native) to a decimal.
// JSON strings are not numbers and are rejected.
func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	default:
		return decimal.Decimal{}, false
	}
}
