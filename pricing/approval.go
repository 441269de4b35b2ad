package pricing

import (
	"github.com/shopspring/decimal"

	"flexiquote/models"
)

// DefaultApprovalThreshold applies when no approval_threshold rule provides one
var DefaultApprovalThreshold = decimal.NewFromInt(10000)

// ResolveApproval classifies a final total. The first approval_threshold rule with a
// threshold wins; conditions are not evaluated for this rule type.
func ResolveApproval(finalTotal decimal.Decimal, rules RuleSet) models.ApprovalDecision {
	threshold := DefaultApprovalThreshold
	for _, rule := range rules {
		if rule.Type != models.RuleTypeApprovalThreshold {
			continue
		}
		params, ok := rule.Params.(ApprovalThresholdParams)
		if !ok || !params.HasThreshold {
			continue
		}
		threshold = params.Threshold
		break
	}

	status := models.ApprovalAutoApproved
	if finalTotal.GreaterThanOrEqual(threshold) {
		status = models.ApprovalManagerRequired
	}
	return models.ApprovalDecision{Status: status, Threshold: threshold}
}
