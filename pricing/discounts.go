package pricing

import (
	"log"

	"github.com/shopspring/decimal"

	"flexiquote/models"
)

// ComputeBestDiscount evaluates order and tiered discounts and returns the single
// largest candidate. Exact ties keep the candidate seen first in evaluation order.
func ComputeBestDiscount(product models.Product, quantity int, subtotal decimal.Decimal, attributes map[string]any, rules RuleSet) (decimal.Decimal, []models.AppliedRule) {
	ctx := EvaluationContext{
		ProductID:  &product.ID,
		Quantity:   &quantity,
		OrderTotal: &subtotal,
		Attributes: attributes,
	}

	var best *models.AppliedRule
	for _, rule := range rules {
		if rule.Type != models.RuleTypeOrderDiscount && rule.Type != models.RuleTypeTieredDiscount {
			continue
		}
		if !rule.matches(ctx) {
			continue
		}

		var candidate *models.AppliedRule
		switch params := rule.Params.(type) {
		case OrderDiscountParams:
			candidate = orderDiscountCandidate(rule, params, subtotal)
		case TieredDiscountParams:
			candidate = tieredDiscountCandidate(rule, params, quantity, subtotal)
		}
		if candidate == nil {
			continue
		}
		log.Printf("💰 Discount candidate: rule %d (%s) amount=%s", rule.ID, rule.Name, candidate.Amount.StringFixed(2))
		if best == nil || candidate.Amount.GreaterThan(best.Amount) {
			best = candidate
		}
	}

	if best == nil {
		return decimal.Zero, []models.AppliedRule{}
	}
	return RoundCurrency(best.Amount), []models.AppliedRule{*best}
}

func orderDiscountCandidate(rule CompiledRule, params OrderDiscountParams, subtotal decimal.Decimal) *models.AppliedRule {
	if subtotal.LessThan(params.MinTotal) {
		return nil
	}
	value := params.Amount
	if !params.Percentage.IsZero() {
		value = value.Add(percentOf(subtotal, params.Percentage))
	}
	value = RoundCurrency(value)
	if !value.IsPositive() {
		return nil
	}
	return &models.AppliedRule{
		ID:       rule.ID,
		Name:     rule.Name,
		RuleType: rule.Type,
		Amount:   value,
		Details: map[string]any{
			"percentage": params.Percentage,
			"amount":     params.Amount,
		},
	}
}

// bestTierPercent returns the highest percent_off among tiers the quantity qualifies for.
// Only strictly greater values replace the running best.
func bestTierPercent(tiers []Tier, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	best := decimal.Zero
	for _, tier := range tiers {
		if qty.GreaterThanOrEqual(tier.MinQty) && tier.PercentOff.GreaterThan(best) {
			best = tier.PercentOff
		}
	}
	return best
}

func tieredDiscountCandidate(rule CompiledRule, params TieredDiscountParams, quantity int, subtotal decimal.Decimal) *models.AppliedRule {
	pct := bestTierPercent(params.Tiers, quantity)
	if !pct.IsPositive() {
		return nil
	}
	return &models.AppliedRule{
		ID:       rule.ID,
		Name:     rule.Name,
		RuleType: rule.Type,
		Amount:   RoundCurrency(percentOf(subtotal, pct)),
		Details: map[string]any{
			"applied_percent": pct,
		},
	}
}
