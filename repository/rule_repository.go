package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"flexiquote/db"
	"flexiquote/models"
)

// RuleRepository handles database operations for pricing rules
type RuleRepository struct{}

// NewRuleRepository creates a new RuleRepository
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

// Ensure RuleRepository implements RuleRepositoryInterface
var _ RuleRepositoryInterface = (*RuleRepository)(nil)

type ruleRow struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	RuleType   string    `db:"rule_type"`
	Condition  []byte    `db:"condition"`
	Parameters []byte    `db:"parameters"`
	IsActive   bool      `db:"is_active"`
	Priority   int       `db:"priority"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r ruleRow) toModel() models.Rule {
	return models.Rule{
		ID:         r.ID,
		Name:       r.Name,
		RuleType:   models.RuleType(r.RuleType),
		Condition:  nullableJSON(r.Condition),
		Parameters: nullableJSON(r.Parameters),
		IsActive:   r.IsActive,
		Priority:   r.Priority,
		CreatedAt:  r.CreatedAt,
	}
}

const ruleColumns = `id, name, rule_type, condition, parameters, is_active, priority, created_at`

// ListActiveOrderedByPriority retrieves all active rules ordered by priority then id
func (r *RuleRepository) ListActiveOrderedByPriority(ctx context.Context) ([]models.Rule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM rules WHERE is_active = true ORDER BY priority ASC, id ASC`)
}

// ListAll retrieves every rule, active or not, ordered by priority then id
func (r *RuleRepository) ListAll(ctx context.Context) ([]models.Rule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM rules ORDER BY priority ASC, id ASC`)
}

func (r *RuleRepository) list(ctx context.Context, query string) ([]models.Rule, error) {
	var rows []ruleRow
	if err := db.DB.SelectContext(ctx, &rows, query); err != nil {
		log.Printf("❌ Error listing rules: %v", err)
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	rules := make([]models.Rule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, row.toModel())
	}
	return rules, nil
}
