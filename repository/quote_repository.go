package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"flexiquote/db"
	"flexiquote/models"
)

// QuoteRepository handles database operations for quotes
type QuoteRepository struct{}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

// Ensure QuoteRepository implements QuoteRepositoryInterface
var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

type quoteRow struct {
	ID                int64           `db:"id"`
	Reference         string          `db:"reference"`
	ProductID         int64           `db:"product_id"`
	Quantity          int             `db:"quantity"`
	Attributes        []byte          `db:"attributes"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	AdjustmentsTotal  decimal.Decimal `db:"adjustments_total"`
	DiscountTotal     decimal.Decimal `db:"discount_total"`
	FinalTotal        decimal.Decimal `db:"final_total"`
	ApprovalStatus    string          `db:"approval_status"`
	ApprovalThreshold int64           `db:"approval_threshold"`
	Breakdown         []byte          `db:"breakdown"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (r quoteRow) toModel() (*models.Quote, error) {
	attrs, err := decodeAttributes(r.Attributes)
	if err != nil {
		return nil, fmt.Errorf("quote %d attributes: %w", r.ID, err)
	}
	return &models.Quote{
		ID:                r.ID,
		Reference:         r.Reference,
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		Attributes:        attrs,
		Subtotal:          r.Subtotal,
		AdjustmentsTotal:  r.AdjustmentsTotal,
		DiscountTotal:     r.DiscountTotal,
		FinalTotal:        r.FinalTotal,
		ApprovalStatus:    models.ApprovalStatus(r.ApprovalStatus),
		ApprovalThreshold: r.ApprovalThreshold,
		Breakdown:         nullableJSON(r.Breakdown),
		CreatedAt:         r.CreatedAt,
	}, nil
}

// Insert persists a quote and sets its generated ID and CreatedAt
func (r *QuoteRepository) Insert(ctx context.Context, quote *models.Quote) error {
	attrs, err := json.Marshal(quote.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode quote attributes: %w", err)
	}

	query := `
		INSERT INTO quotes (reference, product_id, quantity, attributes, subtotal, adjustments_total,
		                    discount_total, final_total, approval_status, approval_threshold, breakdown)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	err = db.DB.QueryRowContext(ctx, query,
		quote.Reference,
		quote.ProductID,
		quote.Quantity,
		string(attrs),
		quote.Subtotal,
		quote.AdjustmentsTotal,
		quote.DiscountTotal,
		quote.FinalTotal,
		string(quote.ApprovalStatus),
		quote.ApprovalThreshold,
		string(quote.Breakdown),
	).Scan(&quote.ID, &quote.CreatedAt)
	if err != nil {
		log.Printf("❌ Error inserting quote: %v", err)
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	log.Printf("✓ Successfully inserted quote: id=%d, reference=%s", quote.ID, quote.Reference)
	return nil
}

// GetByID retrieves a quote by id. Returns ErrNotFound when it does not exist.
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	query := `
		SELECT id, reference::text AS reference, product_id, quantity, attributes, subtotal,
		       adjustments_total, discount_total, final_total, approval_status,
		       approval_threshold, breakdown, created_at
		FROM quotes
		WHERE id = $1
	`
	var row quoteRow
	if err := db.DB.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quote %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ Error fetching quote %d: %v", id, err)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return row.toModel()
}
