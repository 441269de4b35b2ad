package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Condition is the parsed form of a rule's declarative condition.
// A nil field means the key was absent and the check does not apply.
type Condition struct {
	ProductID     *decimal.Decimal
	MinQty        *decimal.Decimal
	MinOrderTotal *decimal.Decimal
	Attributes    map[string]any
}

// EvaluationContext holds the request values a condition is checked against.
// Nil scalar fields were not supplied by the caller and never fail a check.
// A nil Attributes map is an empty configuration: any attribute condition fails.
type EvaluationContext struct {
	ProductID  *int64
	Quantity   *int
	OrderTotal *decimal.Decimal
	Attributes map[string]any
}

// ParseCondition parses a raw JSON condition. Empty or null input yields an empty
// condition, which matches everything.
func ParseCondition(raw []byte) (Condition, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return Condition{}, err
	}
	var c Condition
	if m == nil {
		return c, nil
	}

	for key, dst := range map[string]**decimal.Decimal{
		"product_id":      &c.ProductID,
		"min_qty":         &c.MinQty,
		"min_order_total": &c.MinOrderTotal,
	} {
		v, ok := m[key]
		if !ok {
			continue
		}
		d, err := toDecimal(v)
		if err != nil {
			return Condition{}, fmt.Errorf("condition %s: %w", key, err)
		}
		*dst = &d
	}

	if v, ok := m["attributes"]; ok && v != nil {
		attrs, ok := v.(map[string]any)
		if !ok {
			return Condition{}, fmt.Errorf("condition attributes: expected object, got %T", v)
		}
		c.Attributes = attrs
	}
	return c, nil
}

// Matches reports whether every check present in the condition holds for ctx
func (c Condition) Matches(ctx EvaluationContext) bool {
	if c.ProductID != nil && ctx.ProductID != nil {
		if !c.ProductID.Equal(decimal.NewFromInt(*ctx.ProductID)) {
			return false
		}
	}
	if c.MinQty != nil && ctx.Quantity != nil {
		if decimal.NewFromInt(int64(*ctx.Quantity)).LessThan(*c.MinQty) {
			return false
		}
	}
	if c.MinOrderTotal != nil && ctx.OrderTotal != nil {
		if ctx.OrderTotal.LessThan(*c.MinOrderTotal) {
			return false
		}
	}
	for key, expected := range c.Attributes {
		actual, ok := ctx.Attributes[key]
		if !ok || !valuesEqual(actual, expected) {
			return false
		}
	}
	return true
}
