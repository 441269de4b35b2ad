package service

import (
	"context"

	"flexiquote/models"
)

// QuoteServiceInterface defines the contract for configuration and quoting operations
type QuoteServiceInterface interface {
	Configure(ctx context.Context, req models.ConfigureRequest) (*models.ConfigureResponse, error)
	CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error)
	GetQuote(ctx context.Context, id int64) (*models.QuoteResponse, error)
	ListRules(ctx context.Context) (models.RuleListResponse, error)
	ListProducts(ctx context.Context) ([]models.ProductResponse, error)
}
