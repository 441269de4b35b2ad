package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64                   { return &v }
func ptrInt(v int) *int                         { return &v }
func ptrDec(v decimal.Decimal) *decimal.Decimal { return &v }

func TestParseCondition_EmptyMatchesEverything(t *testing.T) {
	for _, raw := range []string{"", "null", "{}"} {
		c, err := ParseCondition([]byte(raw))
		require.NoError(t, err)
		assert.True(t, c.Matches(EvaluationContext{}))
		assert.True(t, c.Matches(EvaluationContext{ProductID: ptrInt64(9), Quantity: ptrInt(1), Attributes: map[string]any{}}))
	}
}

func TestParseCondition_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{`[]`, `{"min_qty": "lots"}`, `{"attributes": "red"}`, `{"product_id": true}`} {
		_, err := ParseCondition([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestCondition_ProductID(t *testing.T) {
	c, err := ParseCondition([]byte(`{"product_id": 1}`))
	require.NoError(t, err)

	assert.True(t, c.Matches(EvaluationContext{ProductID: ptrInt64(1)}))
	assert.False(t, c.Matches(EvaluationContext{ProductID: ptrInt64(2)}))
	assert.True(t, c.Matches(EvaluationContext{}), "unsupplied product never fails")
}

func TestCondition_MinQtyIsInclusive(t *testing.T) {
	c, err := ParseCondition([]byte(`{"min_qty": "10"}`))
	require.NoError(t, err)

	assert.False(t, c.Matches(EvaluationContext{Quantity: ptrInt(9)}))
	assert.True(t, c.Matches(EvaluationContext{Quantity: ptrInt(10)}))
	assert.True(t, c.Matches(EvaluationContext{ProductID: ptrInt64(1)}), "unsupplied quantity never fails")
}

func TestCondition_MinOrderTotal(t *testing.T) {
	c, err := ParseCondition([]byte(`{"min_order_total": 5000}`))
	require.NoError(t, err)

	assert.False(t, c.Matches(EvaluationContext{OrderTotal: ptrDec(dec("4999.99"))}))
	assert.True(t, c.Matches(EvaluationContext{OrderTotal: ptrDec(dec("5000.00"))}))
	assert.True(t, c.Matches(EvaluationContext{}))
}

func TestCondition_Attributes(t *testing.T) {
	c, err := ParseCondition([]byte(`{"attributes": {"color": "red", "size": 2}}`))
	require.NoError(t, err)

	match := map[string]any{"color": "red", "size": 2.0, "extra": true}
	assert.True(t, c.Matches(EvaluationContext{Attributes: match}))

	assert.False(t, c.Matches(EvaluationContext{Attributes: map[string]any{"color": "red"}}), "absent key fails")
	assert.False(t, c.Matches(EvaluationContext{Attributes: map[string]any{"color": "red", "size": "2"}}), "no coercion")
	assert.False(t, c.Matches(EvaluationContext{Attributes: map[string]any{"color": "blue", "size": 2}}))
}

func TestCondition_NilAttributesAreEmpty(t *testing.T) {
	c, err := ParseCondition([]byte(`{"attributes": {"color": "red"}}`))
	require.NoError(t, err)

	assert.False(t, c.Matches(EvaluationContext{}))
	assert.False(t, c.Matches(EvaluationContext{ProductID: ptrInt64(1), Attributes: nil}))
	assert.Equal(t, c.Matches(EvaluationContext{Attributes: map[string]any{}}), c.Matches(EvaluationContext{}))
}

func TestCondition_AllChecksAreAnded(t *testing.T) {
	c, err := ParseCondition([]byte(`{"product_id": 1, "min_qty": 5, "attributes": {"color": "red"}}`))
	require.NoError(t, err)

	ctx := EvaluationContext{ProductID: ptrInt64(1), Quantity: ptrInt(5), Attributes: map[string]any{"color": "red"}}
	assert.True(t, c.Matches(ctx))

	ctx.Quantity = ptrInt(4)
	assert.False(t, c.Matches(ctx))
}
