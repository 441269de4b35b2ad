package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexiquote/models"
)

func TestRuleRow_ToModel(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	row := ruleRow{
		ID:         3,
		Name:       "Volume tier",
		RuleType:   "tiered_discount",
		Condition:  nil,
		Parameters: []byte(`{"tiers": []}`),
		IsActive:   true,
		Priority:   30,
		CreatedAt:  created,
	}

	rule := row.toModel()
	assert.Equal(t, models.RuleTypeTieredDiscount, rule.RuleType)
	assert.Nil(t, rule.Condition)
	assert.JSONEq(t, `{"tiers": []}`, string(rule.Parameters))
	assert.Equal(t, created, rule.CreatedAt)

	out, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"condition":null`)
}

func TestProductRow_ToModel(t *testing.T) {
	p := productRow{ID: 1, Name: "Widget", BasePrice: decimal.RequireFromString("100.00")}.toModel()
	assert.Equal(t, "100.00", p.BasePrice.StringFixed(2))
	assert.Nil(t, p.AttributesSchema)
}

func TestQuoteRow_ToModel(t *testing.T) {
	row := quoteRow{
		ID:                12,
		Reference:         "2f1d7c9e-1b7e-4c55-9d0e-3a4b8f1e6c21",
		ProductID:         1,
		Quantity:          60,
		Attributes:        []byte(`{"color": "red", "size": 2}`),
		FinalTotal:        decimal.RequireFromString("5288.80"),
		ApprovalStatus:    "auto_approved",
		ApprovalThreshold: 10000,
		Breakdown:         []byte(`{"final_total": 5288.8}`),
	}

	q, err := row.toModel()
	require.NoError(t, err)
	assert.Equal(t, "red", q.Attributes["color"])
	assert.Equal(t, json.Number("2"), q.Attributes["size"])
	assert.Equal(t, models.ApprovalAutoApproved, q.ApprovalStatus)
	assert.Equal(t, "5288.80", q.FinalTotal.StringFixed(2))
}

func TestQuoteRow_ToModelRejectsBadAttributes(t *testing.T) {
	_, err := quoteRow{ID: 1, Attributes: []byte(`[1]`)}.toModel()
	assert.Error(t, err)
}

func TestDecodeAttributes_NullIsEmpty(t *testing.T) {
	attrs, err := decodeAttributes([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, attrs)
	assert.Empty(t, attrs)
}
