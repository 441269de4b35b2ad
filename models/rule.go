package models

import (
	"encoding/json"
	"time"
)

// RuleType identifies how a rule's parameters are interpreted
type RuleType string

const (
	RuleTypeConfigAdjustment  RuleType = "config_adjustment"
	RuleTypeOrderDiscount     RuleType = "order_discount"
	RuleTypeTieredDiscount    RuleType = "tiered_discount"
	RuleTypeApprovalThreshold RuleType = "approval_threshold"
)

// Rule represents a pricing rule in the database
// Condition and Parameters are kept as raw JSON; the pricing engine parses them
type Rule struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	RuleType   RuleType        `json:"rule_type"`
	Condition  json.RawMessage `json:"condition"`
	Parameters json.RawMessage `json:"parameters"`
	IsActive   bool            `json:"is_active"`
	Priority   int             `json:"priority"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RuleListResponse represents the response for GET /rules
type RuleListResponse []Rule
