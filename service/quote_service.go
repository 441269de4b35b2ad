package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"flexiquote/models"
	"flexiquote/pricing"
	"flexiquote/repository"
)

// QuoteService prices configurations and persists quotes
type QuoteService struct {
	productRepo repository.ProductRepositoryInterface
	ruleRepo    repository.RuleRepositoryInterface
	quoteRepo   repository.QuoteRepositoryInterface
	engine      *pricing.Engine
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	productRepo repository.ProductRepositoryInterface,
	ruleRepo repository.RuleRepositoryInterface,
	quoteRepo repository.QuoteRepositoryInterface,
	engine *pricing.Engine,
) *QuoteService {
	return &QuoteService{
		productRepo: productRepo,
		ruleRepo:    ruleRepo,
		quoteRepo:   quoteRepo,
		engine:      engine,
	}
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// Configure validates a product configuration and returns its surcharge
func (s *QuoteService) Configure(ctx context.Context, req models.ConfigureRequest) (*models.ConfigureResponse, error) {
	product, err := s.getProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	attrs := normalizeAttributes(req.Attributes)

	adjustments, applied, err := s.engine.ComputeConfigAdjustments(ctx, *product, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute adjustments: %w", err)
	}

	log.Printf("💰 Configure: product %d adjustments=%s (%d rules)", product.ID, adjustments.StringFixed(2), len(applied))
	return &models.ConfigureResponse{
		ProductID:    product.ID,
		Attributes:   attrs,
		BasePrice:    product.BasePrice.InexactFloat64(),
		Adjustments:  adjustments.InexactFloat64(),
		AppliedRules: models.NewAppliedRuleResponses(applied),
		Message:      "Configuration valid",
	}, nil
}

// CreateQuote prices an order and persists it with a fresh reference
func (s *QuoteService) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.getProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	attrs := normalizeAttributes(req.Attributes)

	result, err := s.engine.Price(ctx, *product, req.Quantity, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to price quote: %w", err)
	}

	breakdown := models.NewPriceBreakdownResponse(result.Breakdown)
	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to encode breakdown: %w", err)
	}

	quote := &models.Quote{
		Reference:         uuid.New().String(),
		ProductID:         product.ID,
		Quantity:          req.Quantity,
		Attributes:        attrs,
		Subtotal:          result.Breakdown.Subtotal,
		AdjustmentsTotal:  result.Breakdown.AdjustmentsTotal,
		DiscountTotal:     result.Breakdown.DiscountTotal,
		FinalTotal:        result.Breakdown.FinalTotal,
		ApprovalStatus:    result.Approval.Status,
		ApprovalThreshold: result.Approval.ThresholdInt(),
		Breakdown:         snapshot,
	}
	if err := s.quoteRepo.Insert(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	log.Printf("✅ CreateQuote: quote %d (%s) final=%s status=%s",
		quote.ID, quote.Reference, quote.FinalTotal.StringFixed(2), quote.ApprovalStatus)
	return newQuoteResponse(quote, breakdown), nil
}

// GetQuote returns a persisted quote as it was priced when created
func (s *QuoteService) GetQuote(ctx context.Context, id int64) (*models.QuoteResponse, error) {
	quote, err := loadQuote(ctx, s.quoteRepo, id)
	if err != nil {
		return nil, err
	}
	breakdown, err := decodeBreakdown(quote.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("quote %d: %w", id, err)
	}
	return newQuoteResponse(quote, breakdown), nil
}

// ListRules returns every rule, active or not, in evaluation order
func (s *QuoteService) ListRules(ctx context.Context) (models.RuleListResponse, error) {
	rules, err := s.ruleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.RuleListResponse(rules), nil
}

// ListProducts returns the product catalogue
func (s *QuoteService) ListProducts(ctx context.Context) ([]models.ProductResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, models.NewProductResponse(p))
	}
	return out, nil
}

func (s *QuoteService) getProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func loadQuote(ctx context.Context, repo repository.QuoteRepositoryInterface, id int64) (*models.Quote, error) {
	quote, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrQuoteNotFound, id)
		}
		return nil, err
	}
	return quote, nil
}

func decodeBreakdown(raw json.RawMessage) (models.PriceBreakdownResponse, error) {
	breakdown := models.PriceBreakdownResponse{AppliedRules: []models.AppliedRuleResponse{}}
	if len(raw) == 0 {
		return breakdown, nil
	}
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		return breakdown, fmt.Errorf("failed to decode breakdown: %w", err)
	}
	if breakdown.AppliedRules == nil {
		breakdown.AppliedRules = []models.AppliedRuleResponse{}
	}
	return breakdown, nil
}

func newQuoteResponse(q *models.Quote, breakdown models.PriceBreakdownResponse) *models.QuoteResponse {
	return &models.QuoteResponse{
		QuoteID:           q.ID,
		Reference:         q.Reference,
		ProductID:         q.ProductID,
		Quantity:          q.Quantity,
		Attributes:        q.Attributes,
		ApprovalStatus:    q.ApprovalStatus,
		ApprovalThreshold: q.ApprovalThreshold,
		Breakdown:         breakdown,
		CreatedAt:         q.CreatedAt,
	}
}

func normalizeAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	return attrs
}
