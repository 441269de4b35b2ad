package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"flexiquote/db"
	"flexiquote/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

type productRow struct {
	ID               int64           `db:"id"`
	Name             string          `db:"name"`
	BasePrice        decimal.Decimal `db:"base_price"`
	AttributesSchema []byte          `db:"attributes_schema"`
}

func (r productRow) toModel() models.Product {
	return models.Product{
		ID:               r.ID,
		Name:             r.Name,
		BasePrice:        r.BasePrice,
		AttributesSchema: nullableJSON(r.AttributesSchema),
	}
}

const productColumns = `id, name, base_price, attributes_schema`

// GetByID retrieves a product by id. Returns ErrNotFound when it does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var row productRow
	err := db.DB.GetContext(ctx, &row, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		log.Printf("❌ Error fetching product %d: %v", id, err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	product := row.toModel()
	return &product, nil
}

// List retrieves all products ordered by id
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var rows []productRow
	if err := db.DB.SelectContext(ctx, &rows, `SELECT `+productColumns+` FROM products ORDER BY id ASC`); err != nil {
		log.Printf("❌ Error listing products: %v", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, nil
}
