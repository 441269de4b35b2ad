package repository

import (
	"context"

	"flexiquote/models"
)

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

// RuleRepositoryInterface defines the contract for rule repository operations
type RuleRepositoryInterface interface {
	// ListActiveOrderedByPriority returns active rules ordered by (priority, id) from a single query
	ListActiveOrderedByPriority(ctx context.Context) ([]models.Rule, error)
	ListAll(ctx context.Context) ([]models.Rule, error)
}

// QuoteRepositoryInterface defines the contract for quote repository operations
type QuoteRepositoryInterface interface {
	// Insert persists quote and fills in its ID and CreatedAt
	Insert(ctx context.Context, quote *models.Quote) error
	GetByID(ctx context.Context, id int64) (*models.Quote, error)
}
