package pricing

import (
	"errors"
	"log"
	"sort"

	"flexiquote/models"
)

// CompiledRule is a rule with its condition and parameters parsed once per load
type CompiledRule struct {
	ID           int64
	Name         string
	Type         models.RuleType
	Priority     int
	Condition    Condition
	ConditionErr error
	Params       Parameters
}

// RuleSet is an evaluation-ordered list of active compiled rules
type RuleSet []CompiledRule

// Compile parses rules and orders them by (priority, id). Inactive rules are dropped.
func Compile(rules []models.Rule) RuleSet {
	set := make(RuleSet, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		cond, condErr := ParseCondition(rule.Condition)
		if condErr != nil {
			log.Printf("⚠️  Compile: rule %d (%s) has a malformed condition, it will not fire: %v", rule.ID, rule.Name, condErr)
		}
		params := ParseParameters(rule.RuleType, rule.Parameters)
		if u, ok := params.(UnparseableParams); ok && !errors.Is(u.Err, errMissingAttribute) {
			log.Printf("⚠️  Compile: rule %d (%s) has malformed parameters, it will not fire: %v", rule.ID, rule.Name, u.Err)
		}
		set = append(set, CompiledRule{
			ID:           rule.ID,
			Name:         rule.Name,
			Type:         rule.RuleType,
			Priority:     rule.Priority,
			Condition:    cond,
			ConditionErr: condErr,
			Params:       params,
		})
	}

	sort.SliceStable(set, func(i, j int) bool {
		if set[i].Priority != set[j].Priority {
			return set[i].Priority < set[j].Priority
		}
		return set[i].ID < set[j].ID
	})
	return set
}

// matches reports whether the rule's condition holds; malformed conditions never match
func (r CompiledRule) matches(ctx EvaluationContext) bool {
	if r.ConditionErr != nil {
		return false
	}
	return r.Condition.Matches(ctx)
}
