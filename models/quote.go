package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents a persisted quote
type Quote struct {
	ID                int64
	Reference         string
	ProductID         int64
	Quantity          int
	Attributes        map[string]any
	Subtotal          decimal.Decimal
	AdjustmentsTotal  decimal.Decimal
	DiscountTotal     decimal.Decimal
	FinalTotal        decimal.Decimal
	ApprovalStatus    ApprovalStatus
	ApprovalThreshold int64
	Breakdown         json.RawMessage // PriceBreakdownResponse snapshot
	CreatedAt         time.Time
}

// ConfigureRequest represents the request body for POST /configure
// Example: {"product_id": 1, "attributes": {"color": "red"}}
type ConfigureRequest struct {
	ProductID  int64          `json:"product_id"`
	Attributes map[string]any `json:"attributes"`
}

// ConfigureResponse represents the response for POST /configure
type ConfigureResponse struct {
	ProductID    int64                 `json:"product_id"`
	Attributes   map[string]any        `json:"attributes"`
	BasePrice    float64               `json:"base_price"`
	Adjustments  float64               `json:"adjustments"`
	AppliedRules []AppliedRuleResponse `json:"applied_rules"`
	Message      string                `json:"message"`
}

// QuoteRequest represents the request body for POST /quote
// Example: {"product_id": 1, "quantity": 60, "attributes": {"color": "red"}}
type QuoteRequest struct {
	ProductID  int64          `json:"product_id"`
	Quantity   int            `json:"quantity"`
	Attributes map[string]any `json:"attributes"`
}

// QuoteResponse represents the response for POST /quote and GET /quotes/:id
// Example response:
//
//	{
//	  "quote_id": 12,
//	  "reference": "2f1d7c9e-1b7e-4c55-9d0e-3a4b8f1e6c21",
//	  "product_id": 1,
//	  "quantity": 60,
//	  "attributes": {"color": "red"},
//	  "approval_status": "auto_approved",
//	  "approval_threshold": 10000,
//	  "breakdown": {...},
//	  "created_at": "2026-10-16T10:30:00Z"
//	}
type QuoteResponse struct {
	QuoteID           int64                  `json:"quote_id"`
	Reference         string                 `json:"reference"`
	ProductID         int64                  `json:"product_id"`
	Quantity          int                    `json:"quantity"`
	Attributes        map[string]any         `json:"attributes"`
	ApprovalStatus    ApprovalStatus         `json:"approval_status"`
	ApprovalThreshold int64                  `json:"approval_threshold"`
	Breakdown         PriceBreakdownResponse `json:"breakdown"`
	CreatedAt         time.Time              `json:"created_at"`
}

// ExportResponse represents the response for POST /quotes/:id/export
type ExportResponse struct {
	QuoteID     int64  `json:"quote_id"`
	DriveFileID string `json:"drive_file_id"`
	FileName    string `json:"file_name"`
}
