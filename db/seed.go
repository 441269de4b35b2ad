package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"flexiquote/models"
)

// SeedFile is the YAML layout used to bootstrap an empty database
// Example:
//
//	products:
//	  - name: Widget
//	    base_price: "100.00"
//	rules:
//	  - name: Red color markup
//	    rule_type: config_adjustment
//	    product: Widget
//	    parameters: {attribute: color, equals: red, amount: 10}
//	    priority: 10
type SeedFile struct {
	Products []SeedProduct `yaml:"products"`
	Rules    []SeedRule    `yaml:"rules"`
}

// SeedProduct is a product entry of a seed file
type SeedProduct struct {
	Name             string         `yaml:"name"`
	BasePrice        string         `yaml:"base_price"`
	AttributesSchema map[string]any `yaml:"attributes_schema"`
}

// SeedRule is a rule entry of a seed file. Product, when set, names a seeded product
// whose id is written into condition.product_id.
type SeedRule struct {
	Name       string         `yaml:"name"`
	RuleType   string         `yaml:"rule_type"`
	Product    string         `yaml:"product"`
	Condition  map[string]any `yaml:"condition"`
	Parameters map[string]any `yaml:"parameters"`
	IsActive   *bool          `yaml:"is_active"`
	Priority   *int           `yaml:"priority"`
}

var knownRuleTypes = map[models.RuleType]bool{
	models.RuleTypeConfigAdjustment:  true,
	models.RuleTypeOrderDiscount:     true,
	models.RuleTypeTieredDiscount:    true,
	models.RuleTypeApprovalThreshold: true,
}

// ParseSeed decodes and validates seed YAML
func ParseSeed(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	names := make(map[string]bool)
	for i, p := range seed.Products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("product %d: name is required", i)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("product %q is declared twice", p.Name)
		}
		names[p.Name] = true
		price, err := decimal.NewFromString(p.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("product %q: invalid base_price %q", p.Name, p.BasePrice)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("product %q: base_price must be non-negative", p.Name)
		}
	}
	for i, r := range seed.Rules {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("rule %d: name is required", i)
		}
		if !knownRuleTypes[models.RuleType(r.RuleType)] {
			return nil, fmt.Errorf("rule %q: unknown rule_type %q", r.Name, r.RuleType)
		}
		if r.Product != "" && !names[r.Product] {
			return nil, fmt.Errorf("rule %q: references unknown product %q", r.Name, r.Product)
		}
	}
	return &seed, nil
}

// LoadSeedFile reads and parses a seed file from disk
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// conditionJSON merges the resolved product id into the rule condition
func (r SeedRule) conditionJSON(productIDs map[string]int64) (*string, error) {
	cond := make(map[string]any, len(r.Condition)+1)
	for k, v := range r.Condition {
		cond[k] = v
	}
	if r.Product != "" {
		cond["product_id"] = productIDs[r.Product]
	}
	if len(cond) == 0 {
		return nil, nil
	}
	return jsonString(cond)
}

func jsonString(v map[string]any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// Seed inserts the products and rules of the seed file at path when the products
// table is empty. It returns false when the database already had data.
func Seed(ctx context.Context, path string) (bool, error) {
	seed, err := LoadSeedFile(path)
	if err != nil {
		return false, err
	}

	var count int
	if err := DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Printf("⏭️  Seed: products table already has %d rows, skipping %s", count, path)
		return false, nil
	}

	tx, err := DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	productIDs := make(map[string]int64, len(seed.Products))
	for _, p := range seed.Products {
		schema, err := jsonString(p.AttributesSchema)
		if err != nil {
			return false, fmt.Errorf("product %q: %w", p.Name, err)
		}
		var id int64
		err = tx.QueryRowContext(ctx,
			`INSERT INTO products (name, base_price, attributes_schema) VALUES ($1, $2, $3) RETURNING id`,
			p.Name, decimal.RequireFromString(p.BasePrice), schema,
		).Scan(&id)
		if err != nil {
			return false, fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
		productIDs[p.Name] = id
	}

	for _, r := range seed.Rules {
		cond, err := r.conditionJSON(productIDs)
		if err != nil {
			return false, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		params, err := jsonString(r.Parameters)
		if err != nil {
			return false, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		isActive := true
		if r.IsActive != nil {
			isActive = *r.IsActive
		}
		priority := 100
		if r.Priority != nil {
			priority = *r.Priority
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rules (name, rule_type, condition, parameters, is_active, priority) VALUES ($1, $2, $3, $4, $5, $6)`,
			r.Name, r.RuleType, cond, params, isActive, priority,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert rule %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("✅ Seed: inserted %d products and %d rules from %s", len(seed.Products), len(seed.Rules), path)
	return true, nil
}
