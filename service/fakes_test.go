package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"flexiquote/models"
	"flexiquote/repository"
)

type fakeProductRepo struct {
	products map[int64]models.Product
	err      error
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeRuleRepo struct {
	rules []models.Rule
}

func (f *fakeRuleRepo) ListActiveOrderedByPriority(ctx context.Context) ([]models.Rule, error) {
	var out []models.Rule
	for _, r := range f.rules {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleRepo) ListAll(ctx context.Context) ([]models.Rule, error) {
	return f.rules, nil
}

type fakeQuoteRepo struct {
	quotes map[int64]models.Quote
	nextID int64
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: map[int64]models.Quote{}}
}

func (f *fakeQuoteRepo) Insert(ctx context.Context, q *models.Quote) error {
	f.nextID++
	q.ID = f.nextID
	q.CreatedAt = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)
	f.quotes[q.ID] = *q
	return nil
}

func (f *fakeQuoteRepo) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, fmt.Errorf("quote %d: %w", id, repository.ErrNotFound)
	}
	return &q, nil
}

func widgetCatalog() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]models.Product{
		1: {ID: 1, Name: "Widget", BasePrice: decimal.RequireFromString("100.00")},
	}}
}

func rule(id int64, name string, ruleType models.RuleType, priority int, condition, params string) models.Rule {
	return models.Rule{
		ID:         id,
		Name:       name,
		RuleType:   ruleType,
		Condition:  json.RawMessage(condition),
		Parameters: json.RawMessage(params),
		IsActive:   true,
		Priority:   priority,
	}
}

func widgetRules() *fakeRuleRepo {
	return &fakeRuleRepo{rules: []models.Rule{
		rule(4, "Approval threshold", models.RuleTypeApprovalThreshold, 5,
			`{"product_id": 1}`, `{"threshold": 10000}`),
		rule(1, "Red color markup", models.RuleTypeConfigAdjustment, 10,
			`{"product_id": 1}`, `{"attribute": "color", "equals": "red", "amount": 10}`),
		rule(2, "High value discount", models.RuleTypeOrderDiscount, 20,
			`{"product_id": 1, "min_order_total": 5000}`, `{"percentage": 10}`),
		rule(3, "Volume tier", models.RuleTypeTieredDiscount, 30,
			`{"product_id": 1}`, `{"tiers": [{"min_qty": 10, "percent_off": 5}, {"min_qty": 50, "percent_off": 12}]}`),
	}}
}

type fakePrinter struct {
	urls []string
	err  error
}

func (f *fakePrinter) PrintToPDF(ctx context.Context, renderURL string) ([]byte, error) {
	f.urls = append(f.urls, renderURL)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeDrive struct {
	folderID string
	name     string
	data     []byte
}

func (f *fakeDrive) UploadPDF(ctx context.Context, folderID, name string, data []byte) (string, error) {
	f.folderID, f.name, f.data = folderID, name, data
	return "drive-file-1", nil
}
