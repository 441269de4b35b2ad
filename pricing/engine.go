package pricing

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"flexiquote/models"
)

// RuleSource supplies the active rules ordered by (priority, id) from a single consistent read
type RuleSource interface {
	ListActiveOrderedByPriority(ctx context.Context) ([]models.Rule, error)
}

// Result is the outcome of pricing one request
type Result struct {
	Breakdown models.PriceBreakdown
	Approval  models.ApprovalDecision
}

// Engine evaluates pricing rules. It keeps no state between calls: the active rule set
// is re-read on every evaluation, so rule edits apply to the next request.
type Engine struct {
	rules RuleSource
}

// NewEngine creates a new pricing engine reading rules from source
func NewEngine(source RuleSource) *Engine {
	return &Engine{rules: source}
}

// LoadRules reads and compiles the current active rule set
func (e *Engine) LoadRules(ctx context.Context) (RuleSet, error) {
	rules, err := e.rules.ListActiveOrderedByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules: %w", err)
	}
	return Compile(rules), nil
}

// ComputeConfigAdjustments returns the configuration surcharge for product and attributes
func (e *Engine) ComputeConfigAdjustments(ctx context.Context, product models.Product, attributes map[string]any) (decimal.Decimal, []models.AppliedRule, error) {
	rules, err := e.LoadRules(ctx)
	if err != nil {
		return decimal.Zero, nil, err
	}
	total, applied := ComputeConfigAdjustments(product, attributes, rules)
	return total, applied, nil
}

// ComputeDiscounts returns the best discount for an order of quantity at subtotal
func (e *Engine) ComputeDiscounts(ctx context.Context, product models.Product, quantity int, subtotal decimal.Decimal, attributes map[string]any) (decimal.Decimal, []models.AppliedRule, error) {
	rules, err := e.LoadRules(ctx)
	if err != nil {
		return decimal.Zero, nil, err
	}
	discount, applied := ComputeBestDiscount(product, quantity, subtotal, attributes, rules)
	return discount, applied, nil
}

// ResolveApproval classifies finalTotal against the current threshold
func (e *Engine) ResolveApproval(ctx context.Context, finalTotal decimal.Decimal) (models.ApprovalDecision, error) {
	rules, err := e.LoadRules(ctx)
	if err != nil {
		return models.ApprovalDecision{}, err
	}
	return ResolveApproval(finalTotal, rules), nil
}

// Price runs the full pricing sequence over a single read of the active rules
func (e *Engine) Price(ctx context.Context, product models.Product, quantity int, attributes map[string]any) (*Result, error) {
	rules, err := e.LoadRules(ctx)
	if err != nil {
		return nil, err
	}
	result := Price(product, quantity, attributes, rules)
	log.Printf("✅ Price: product %d qty %d subtotal=%s discount=%s final=%s status=%s",
		product.ID, quantity,
		result.Breakdown.Subtotal.StringFixed(2),
		result.Breakdown.DiscountTotal.StringFixed(2),
		result.Breakdown.FinalTotal.StringFixed(2),
		result.Approval.Status)
	return &result, nil
}

// Price computes base x quantity + adjustments - best discount and the approval decision
func Price(product models.Product, quantity int, attributes map[string]any, rules RuleSet) Result {
	adjustments, configApplied := ComputeConfigAdjustments(product, attributes, rules)
	subtotal := RoundCurrency(product.BasePrice.Mul(decimal.NewFromInt(int64(quantity))).Add(adjustments))
	discount, discountApplied := ComputeBestDiscount(product, quantity, subtotal, attributes, rules)
	finalTotal := RoundCurrency(subtotal.Sub(discount))

	applied := make([]models.AppliedRule, 0, len(configApplied)+len(discountApplied))
	applied = append(applied, configApplied...)
	applied = append(applied, discountApplied...)

	return Result{
		Breakdown: models.PriceBreakdown{
			Subtotal:         subtotal,
			AdjustmentsTotal: adjustments,
			DiscountTotal:    discount,
			FinalTotal:       finalTotal,
			AppliedRules:     applied,
		},
		Approval: ResolveApproval(finalTotal, rules),
	}
}
