package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product represents a configurable product in the database
type Product struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	BasePrice        decimal.Decimal `json:"-"`
	AttributesSchema json.RawMessage `json:"attributes_schema,omitempty"`
}

// ProductResponse is the JSON shape of a product
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	BasePrice        float64         `json:"base_price"`
	AttributesSchema json.RawMessage `json:"attributes_schema,omitempty"`
}

// NewProductResponse converts a product for serialization
func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		BasePrice:        p.BasePrice.InexactFloat64(),
		AttributesSchema: p.AttributesSchema,
	}
}
