package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexiquote/models"
)

func TestComputeConfigAdjustments_RedMarkup(t *testing.T) {
	total, applied := ComputeConfigAdjustments(widget(), map[string]any{"color": "red"}, Compile(widgetRules()))

	assert.Equal(t, "10.00", total.StringFixed(2))
	require.Len(t, applied, 1)
	assert.Equal(t, int64(1), applied[0].ID)
	assert.Equal(t, models.RuleTypeConfigAdjustment, applied[0].RuleType)
	assert.Equal(t, "color", applied[0].Details["attribute"])
}

func TestComputeConfigAdjustments_EqualsMismatchSkips(t *testing.T) {
	total, applied := ComputeConfigAdjustments(widget(), map[string]any{"color": "blue"}, Compile(widgetRules()))
	assert.True(t, total.IsZero())
	assert.Empty(t, applied)
}

func TestComputeConfigAdjustments_StacksRoundedIncrements(t *testing.T) {
	product := models.Product{ID: 1, BasePrice: dec("33.33")}
	rules := Compile([]models.Rule{
		newRule(1, "finish", models.RuleTypeConfigAdjustment, 10, "", `{"attribute": "finish", "percentage": 2.5}`),
		newRule(2, "engraving", models.RuleTypeConfigAdjustment, 20, "", `{"attribute": "engraving", "amount": "4.995"}`),
	})

	total, applied := ComputeConfigAdjustments(product, map[string]any{}, rules)

	// 33.33 * 2.5% = 0.83325 -> 0.83 ; 4.995 -> 5.00
	require.Len(t, applied, 2)
	assert.Equal(t, "0.83", applied[0].Amount.StringFixed(2))
	assert.Equal(t, "5.00", applied[1].Amount.StringFixed(2))
	assert.True(t, total.Equal(applied[0].Amount.Add(applied[1].Amount)))
	assert.Equal(t, "5.83", total.StringFixed(2))
}

func TestComputeConfigAdjustments_AmountPlusPercentage(t *testing.T) {
	rules := Compile([]models.Rule{
		newRule(1, "premium", models.RuleTypeConfigAdjustment, 10, "", `{"attribute": "tier", "equals": "premium", "amount": 5, "percentage": 10}`),
	})
	total, applied := ComputeConfigAdjustments(widget(), map[string]any{"tier": "premium"}, rules)
	assert.Equal(t, "15.00", total.StringFixed(2))
	require.Len(t, applied, 1)
}

func TestComputeConfigAdjustments_MissingAttributeIsSilentlySkipped(t *testing.T) {
	rules := Compile([]models.Rule{
		newRule(1, "no attribute", models.RuleTypeConfigAdjustment, 10, "", `{"amount": 99}`),
	})
	total, applied := ComputeConfigAdjustments(widget(), map[string]any{"color": "red"}, rules)
	assert.True(t, total.IsZero())
	assert.Empty(t, applied)
}

func TestComputeConfigAdjustments_OtherProductConditionSkips(t *testing.T) {
	other := widget()
	other.ID = 2
	total, applied := ComputeConfigAdjustments(other, map[string]any{"color": "red"}, Compile(widgetRules()))
	assert.True(t, total.IsZero())
	assert.Empty(t, applied)
}

func TestComputeConfigAdjustments_IgnoresQuantityConditions(t *testing.T) {
	// quantity is not part of the configuration context, so min_qty does not apply
	rules := Compile([]models.Rule{
		newRule(1, "bulk colour", models.RuleTypeConfigAdjustment, 10, `{"min_qty": 100}`, `{"attribute": "color", "amount": 1}`),
	})
	total, _ := ComputeConfigAdjustments(widget(), map[string]any{"color": "red"}, rules)
	assert.Equal(t, "1.00", total.StringFixed(2))
}
