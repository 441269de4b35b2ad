package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flexiquote/models"
)

func TestResolveApproval_DefaultThreshold(t *testing.T) {
	d := ResolveApproval(dec("9999.99"), nil)
	assert.Equal(t, models.ApprovalAutoApproved, d.Status)
	assert.Equal(t, int64(10000), d.ThresholdInt())

	d = ResolveApproval(dec("10000.00"), nil)
	assert.Equal(t, models.ApprovalManagerRequired, d.Status)
}

func TestResolveApproval_FlipsExactlyAtThreshold(t *testing.T) {
	rules := Compile([]models.Rule{
		newRule(1, "threshold", models.RuleTypeApprovalThreshold, 5, "", `{"threshold": 2500}`),
	})
	assert.Equal(t, models.ApprovalManagerRequired, ResolveApproval(dec("2500.00"), rules).Status)
	assert.Equal(t, models.ApprovalAutoApproved, ResolveApproval(dec("2499.99"), rules).Status)
}

func TestResolveApproval_FirstRuleWinsAndConditionIgnored(t *testing.T) {
	rules := Compile([]models.Rule{
		newRule(1, "second", models.RuleTypeApprovalThreshold, 20, "", `{"threshold": 100}`),
		newRule(2, "first", models.RuleTypeApprovalThreshold, 10, `{"product_id": 999}`, `{"threshold": "5000.75"}`),
		newRule(3, "no threshold", models.RuleTypeApprovalThreshold, 1, "", `{}`),
	})
	d := ResolveApproval(dec("5000.50"), rules)
	assert.Equal(t, models.ApprovalAutoApproved, d.Status)
	assert.Equal(t, int64(5000), d.ThresholdInt())
	assert.True(t, d.Threshold.Equal(dec("5000.75")))
}

func TestResolveApproval_MalformedThresholdIsSkipped(t *testing.T) {
	rules := Compile([]models.Rule{
		newRule(1, "broken", models.RuleTypeApprovalThreshold, 1, "", `{"threshold": "lots"}`),
		newRule(2, "valid", models.RuleTypeApprovalThreshold, 2, "", `{"threshold": 300}`),
	})
	d := ResolveApproval(dec("300"), rules)
	assert.Equal(t, models.ApprovalManagerRequired, d.Status)
	assert.Equal(t, int64(300), d.ThresholdInt())
}
