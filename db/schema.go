package db

import (
	"context"
	"fmt"
	"log"
)

// schemaStatements create the tables the service needs when they are missing.
// There is no migration history; changes to existing tables are applied out of band.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		base_price NUMERIC(12,2) NOT NULL CHECK (base_price >= 0),
		attributes_schema JSONB
	)`,
	`CREATE TABLE IF NOT EXISTS rules (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		rule_type VARCHAR(64) NOT NULL,
		condition JSONB,
		parameters JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		priority INTEGER NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rules_active_priority ON rules (priority, id) WHERE is_active`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id BIGSERIAL PRIMARY KEY,
		reference UUID NOT NULL UNIQUE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		attributes JSONB,
		subtotal NUMERIC(12,2) NOT NULL,
		adjustments_total NUMERIC(12,2) NOT NULL,
		discount_total NUMERIC(12,2) NOT NULL,
		final_total NUMERIC(12,2) NOT NULL,
		approval_status VARCHAR(32) NOT NULL,
		approval_threshold BIGINT NOT NULL,
		breakdown JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the products, rules and quotes tables if they do not exist
func EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	log.Printf("✓ Database schema ready")
	return nil
}
