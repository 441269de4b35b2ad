package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

var errNotNumeric = errors.New("value is not numeric")

// RoundCurrency rounds to 2 decimal places, half away from zero
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns base * pct / 100, unrounded
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// toDecimal normalizes a decoded JSON scalar into an exact decimal.
// Numbers and numeric strings are accepted; anything else is an error.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", errNotNumeric, n)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %T", errNotNumeric, v)
}

// isNumber reports whether v is a JSON number (numeric strings are not numbers here)
func isNumber(v any) bool {
	switch v.(type) {
	case decimal.Decimal, json.Number, float64, float32, int, int32, int64:
		return true
	}
	return false
}

// valuesEqual is strict equality between two decoded JSON values: numbers compare by
// exact value, everything else must have the same kind and value. "1" never equals 1.
func valuesEqual(a, b any) bool {
	if isNumber(a) || isNumber(b) {
		if !isNumber(a) || !isNumber(b) {
			return false
		}
		da, errA := toDecimal(a)
		db, errB := toDecimal(b)
		return errA == nil && errB == nil && da.Equal(db)
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return reflect.DeepEqual(a, b)
}

// decodeObject decodes raw JSON into a map keeping numbers exact.
// Empty input and JSON null decode to a nil map.
func decodeObject(raw []byte) (map[string]any, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}
	return out, nil
}

// decimalParam reads an optional numeric key, falling back to def when absent or null
func decimalParam(m map[string]any, key string, def decimal.Decimal) (decimal.Decimal, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
