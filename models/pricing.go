package models

import "github.com/shopspring/decimal"

// ApprovalStatus is the outcome of classifying a final total against the approval threshold
type ApprovalStatus string

const (
	ApprovalAutoApproved    ApprovalStatus = "auto_approved"
	ApprovalManagerRequired ApprovalStatus = "manager_required"
)

// AppliedRule records a rule that contributed an amount to a price
// Details carries the parameters that produced the amount; decimal values stay exact
// until the response boundary
type AppliedRule struct {
	ID       int64
	Name     string
	RuleType RuleType
	Amount   decimal.Decimal // always rounded to 2 places
	Details  map[string]any
}

// PriceBreakdown represents the complete pricing calculation result
type PriceBreakdown struct {
	Subtotal         decimal.Decimal
	AdjustmentsTotal decimal.Decimal
	DiscountTotal    decimal.Decimal
	FinalTotal       decimal.Decimal
	AppliedRules     []AppliedRule
}

// ApprovalDecision represents the approval classification of a final total
type ApprovalDecision struct {
	Status    ApprovalStatus
	Threshold decimal.Decimal
}

// ThresholdInt returns the threshold as reported to clients (integer part)
func (d ApprovalDecision) ThresholdInt() int64 {
	return d.Threshold.IntPart()
}

// AppliedRuleResponse is the JSON shape of an applied rule
type AppliedRuleResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	RuleType RuleType       `json:"rule_type"`
	Amount   float64        `json:"amount"`
	Details  map[string]any `json:"details"`
}

// PriceBreakdownResponse is the JSON shape of a price breakdown
// Example:
//
//	{
//	  "subtotal": 6010.0,
//	  "adjustments_total": 10.0,
//	  "discount_total": 721.2,
//	  "final_total": 5288.8,
//	  "applied_rules": [
//	    {"id": 1, "name": "Red color markup", "rule_type": "config_adjustment", "amount": 10.0,
//	     "details": {"attribute": "color", "percentage": 0, "amount": 10}}
//	  ]
//	}
type PriceBreakdownResponse struct {
	Subtotal         float64               `json:"subtotal"`
	AdjustmentsTotal float64               `json:"adjustments_total"`
	DiscountTotal    float64               `json:"discount_total"`
	FinalTotal       float64               `json:"final_total"`
	AppliedRules     []AppliedRuleResponse `json:"applied_rules"`
}

// NewAppliedRuleResponses converts applied rules for serialization
func NewAppliedRuleResponses(rules []AppliedRule) []AppliedRuleResponse {
	out := make([]AppliedRuleResponse, 0, len(rules))
	for _, r := range rules {
		details := make(map[string]any, len(r.Details))
		for k, v := range r.Details {
			if d, ok := v.(decimal.Decimal); ok {
				details[k] = d.InexactFloat64()
				continue
			}
			details[k] = v
		}
		out = append(out, AppliedRuleResponse{
			ID:       r.ID,
			Name:     r.Name,
			RuleType: r.RuleType,
			Amount:   r.Amount.InexactFloat64(),
			Details:  details,
		})
	}
	return out
}

// NewPriceBreakdownResponse converts a breakdown for serialization
func NewPriceBreakdownResponse(b PriceBreakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		Subtotal:         b.Subtotal.InexactFloat64(),
		AdjustmentsTotal: b.AdjustmentsTotal.InexactFloat64(),
		DiscountTotal:    b.DiscountTotal.InexactFloat64(),
		FinalTotal:       b.FinalTotal.InexactFloat64(),
		AppliedRules:     NewAppliedRuleResponses(b.AppliedRules),
	}
}
