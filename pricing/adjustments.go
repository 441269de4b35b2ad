package pricing

import (
	"log"

	"github.com/shopspring/decimal"

	"flexiquote/models"
)

// ComputeConfigAdjustments applies every matching config_adjustment rule in evaluation
// order. Increments are rounded individually and stack additively.
func ComputeConfigAdjustments(product models.Product, attributes map[string]any, rules RuleSet) (decimal.Decimal, []models.AppliedRule) {
	ctx := EvaluationContext{
		ProductID:  &product.ID,
		Attributes: attributes,
	}

	total := decimal.Zero
	applied := []models.AppliedRule{}
	for _, rule := range rules {
		if rule.Type != models.RuleTypeConfigAdjustment {
			continue
		}
		if !rule.matches(ctx) {
			continue
		}
		params, ok := rule.Params.(ConfigAdjustmentParams)
		if !ok {
			continue
		}
		if params.HasEquals && !valuesEqual(attributes[params.Attribute], params.Equals) {
			continue
		}

		increment := params.Amount
		if !params.Percentage.IsZero() {
			increment = increment.Add(percentOf(product.BasePrice, params.Percentage))
		}
		increment = RoundCurrency(increment)
		total = total.Add(increment)

		log.Printf("💰 ConfigAdjustment: rule %d (%s) fired on %s, increment=%s", rule.ID, rule.Name, params.Attribute, increment.StringFixed(2))
		applied = append(applied, models.AppliedRule{
			ID:       rule.ID,
			Name:     rule.Name,
			RuleType: rule.Type,
			Amount:   increment,
			Details: map[string]any{
				"attribute":  params.Attribute,
				"percentage": params.Percentage,
				"amount":     params.Amount,
			},
		})
	}
	return RoundCurrency(total), applied
}
