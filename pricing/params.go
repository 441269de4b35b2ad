package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"flexiquote/models"
)

var (
	errMissingAttribute = errors.New("parameters.attribute is missing")
	errUnknownRuleType  = errors.New("unknown rule type")
)

// Parameters is the parsed, type-specific payload of a rule
type Parameters interface {
	ruleType() models.RuleType
}

// ConfigAdjustmentParams adds a flat amount and/or a percentage of the base price
// when the named attribute is configured (optionally to a specific value)
type ConfigAdjustmentParams struct {
	Attribute  string
	Equals     any
	HasEquals  bool
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// OrderDiscountParams takes a flat amount and/or percentage off orders at or above MinTotal
type OrderDiscountParams struct {
	MinTotal   decimal.Decimal
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// Tier is one quantity breakpoint of a tiered discount
type Tier struct {
	MinQty     decimal.Decimal
	PercentOff decimal.Decimal
}

// TieredDiscountParams is a quantity-breakpoint schedule
type TieredDiscountParams struct {
	Tiers []Tier
}

// ApprovalThresholdParams overrides the default approval threshold
type ApprovalThresholdParams struct {
	Threshold    decimal.Decimal
	HasThreshold bool
}

// UnparseableParams marks a rule whose parameters could not be interpreted.
// Such rules never fire.
type UnparseableParams struct {
	Type models.RuleType
	Err  error
}

func (ConfigAdjustmentParams) ruleType() models.RuleType  { return models.RuleTypeConfigAdjustment }
func (OrderDiscountParams) ruleType() models.RuleType     { return models.RuleTypeOrderDiscount }
func (TieredDiscountParams) ruleType() models.RuleType    { return models.RuleTypeTieredDiscount }
func (ApprovalThresholdParams) ruleType() models.RuleType { return models.RuleTypeApprovalThreshold }
func (p UnparseableParams) ruleType() models.RuleType     { return p.Type }

// ParseParameters interprets raw JSON parameters according to the rule type.
// It never fails: problems are reported through UnparseableParams.
func ParseParameters(ruleType models.RuleType, raw []byte) Parameters {
	m, err := decodeObject(raw)
	if err != nil {
		return UnparseableParams{Type: ruleType, Err: err}
	}
	if m == nil {
		m = map[string]any{}
	}

	var p Parameters
	switch ruleType {
	case models.RuleTypeConfigAdjustment:
		p, err = parseConfigAdjustment(m)
	case models.RuleTypeOrderDiscount:
		p, err = parseOrderDiscount(m)
	case models.RuleTypeTieredDiscount:
		p, err = parseTieredDiscount(m)
	case models.RuleTypeApprovalThreshold:
		p, err = parseApprovalThreshold(m)
	default:
		err = fmt.Errorf("%w: %q", errUnknownRuleType, ruleType)
	}
	if err != nil {
		return UnparseableParams{Type: ruleType, Err: err}
	}
	return p
}

func parseConfigAdjustment(m map[string]any) (Parameters, error) {
	attr, ok := m["attribute"]
	if !ok || attr == nil {
		return nil, errMissingAttribute
	}
	name, ok := attr.(string)
	if !ok {
		return nil, fmt.Errorf("parameters.attribute: expected string, got %T", attr)
	}
	amount, err := decimalParam(m, "amount", decimal.Zero)
	if err != nil {
		return nil, err
	}
	pct, err := decimalParam(m, "percentage", decimal.Zero)
	if err != nil {
		return nil, err
	}
	equals, hasEquals := m["equals"]
	return ConfigAdjustmentParams{
		Attribute:  name,
		Equals:     equals,
		HasEquals:  hasEquals && equals != nil,
		Amount:     amount,
		Percentage: pct,
	}, nil
}

func parseOrderDiscount(m map[string]any) (Parameters, error) {
	minTotal, err := decimalParam(m, "min_total", decimal.Zero)
	if err != nil {
		return nil, err
	}
	amount, err := decimalParam(m, "amount", decimal.Zero)
	if err != nil {
		return nil, err
	}
	pct, err := decimalParam(m, "percentage", decimal.Zero)
	if err != nil {
		return nil, err
	}
	return OrderDiscountParams{MinTotal: minTotal, Amount: amount, Percentage: pct}, nil
}

func parseTieredDiscount(m map[string]any) (Parameters, error) {
	raw, ok := m["tiers"]
	if !ok || raw == nil {
		return TieredDiscountParams{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("parameters.tiers: expected list, got %T", raw)
	}
	tiers := make([]Tier, 0, len(list))
	for i, entry := range list {
		tm, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parameters.tiers[%d]: expected object, got %T", i, entry)
		}
		minQty, err := decimalParam(tm, "min_qty", decimal.Zero)
		if err != nil {
			return nil, fmt.Errorf("parameters.tiers[%d]: %w", i, err)
		}
		pct, err := decimalParam(tm, "percent_off", decimal.Zero)
		if err != nil {
			return nil, fmt.Errorf("parameters.tiers[%d]: %w", i, err)
		}
		tiers = append(tiers, Tier{MinQty: minQty, PercentOff: pct})
	}
	return TieredDiscountParams{Tiers: tiers}, nil
}

func parseApprovalThreshold(m map[string]any) (Parameters, error) {
	v, ok := m["threshold"]
	if !ok || v == nil {
		return ApprovalThresholdParams{}, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}
	return ApprovalThresholdParams{Threshold: d, HasThreshold: true}, nil
}
