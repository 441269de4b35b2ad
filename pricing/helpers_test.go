package pricing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"flexiquote/models"
)

func newRule(id int64, name string, ruleType models.RuleType, priority int, condition, params string) models.Rule {
	r := models.Rule{
		ID:       id,
		Name:     name,
		RuleType: ruleType,
		IsActive: true,
		Priority: priority,
	}
	if condition != "" {
		r.Condition = json.RawMessage(condition)
	}
	if params != "" {
		r.Parameters = json.RawMessage(params)
	}
	return r
}

func widget() models.Product {
	return models.Product{ID: 1, Name: "Widget", BasePrice: decimal.RequireFromString("100.00")}
}

// widgetRules mirrors the reference catalogue: red markup, high value discount,
// volume tiers and an explicit 10000 approval threshold.
func widgetRules() []models.Rule {
	return []models.Rule{
		newRule(1, "Red color markup", models.RuleTypeConfigAdjustment, 10,
			`{"product_id": 1}`, `{"attribute": "color", "equals": "red", "amount": 10}`),
		newRule(2, "High value discount", models.RuleTypeOrderDiscount, 20,
			`{"product_id": 1, "min_order_total": 5000}`, `{"percentage": 10}`),
		newRule(3, "Volume tier", models.RuleTypeTieredDiscount, 30,
			`{"product_id": 1}`, `{"tiers": [{"min_qty": 10, "percent_off": 5}, {"min_qty": 50, "percent_off": 12}]}`),
		newRule(4, "Approval threshold", models.RuleTypeApprovalThreshold, 5,
			`{"product_id": 1}`, `{"threshold": 10000}`),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type staticRules struct {
	rules []models.Rule
	err   error
	calls int
}

func (s *staticRules) ListActiveOrderedByPriority(ctx context.Context) ([]models.Rule, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rules, nil
}

var errStoreDown = errors.New("store down")
