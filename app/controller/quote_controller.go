package controller

import (
	"fmt"
	"log"
	"net/http"

	"flexiquote/models"
	"flexiquote/service"
)

// QuoteController handles HTTP requests for configuration and quotes
type QuoteController struct {
	service service.QuoteServiceInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(svc service.QuoteServiceInterface) *QuoteController {
	return &QuoteController{
		service: svc,
	}
}

// Configure handles POST /configure
// Example request:
// POST /configure
// {"product_id": 1, "attributes": {"color": "red"}}
// Example response:
//
//	{
//	  "product_id": 1,
//	  "attributes": {"color": "red"},
//	  "base_price": 100,
//	  "adjustments": 10,
//	  "applied_rules": [...],
//	  "message": "Configuration valid"
//	}
func (c *QuoteController) Configure(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Configure: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ Configure: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ConfigureRequest
	if err := decodeBody(r.Body, &req); err != nil {
		log.Printf("❌ Configure: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := c.service.Configure(r.Context(), req)
	if err != nil {
		writeServiceError(w, "Configure", err)
		return
	}

	log.Printf("✅ Configure: product %d, %d adjustment rules applied", resp.ProductID, len(resp.AppliedRules))
	writeJSON(w, "Configure", http.StatusOK, resp)
}

// CreateQuote handles POST /quote
// Example request:
// POST /quote
// {"product_id": 1, "quantity": 60, "attributes": {"color": "red"}}
// Example response:
//
//	{
//	  "quote_id": 12,
//	  "reference": "2f1d7c9e-1b7e-4c55-9d0e-3a4b8f1e6c21",
//	  "approval_status": "auto_approved",
//	  "approval_threshold": 10000,
//	  "breakdown": {"subtotal": 6010, "adjustments_total": 10, "discount_total": 721.2, "final_total": 5288.8, ...}
//	}
func (c *QuoteController) CreateQuote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateQuote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateQuote: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuoteRequest
	if err := decodeBody(r.Body, &req); err != nil {
		log.Printf("❌ CreateQuote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := c.service.CreateQuote(r.Context(), req)
	if err != nil {
		writeServiceError(w, "CreateQuote", err)
		return
	}

	log.Printf("✅ CreateQuote: Successfully created quote id=%d, status=%s", resp.QuoteID, resp.ApprovalStatus)
	writeJSON(w, "CreateQuote", http.StatusOK, resp)
}

// GetQuote handles GET /quotes/:id
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetQuote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetQuote: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quoteID, err := quoteIDFromPath(r.URL.Path, "")
	if err != nil {
		log.Printf("❌ GetQuote: %v: %s", err, r.URL.Path)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := c.service.GetQuote(r.Context(), quoteID)
	if err != nil {
		writeServiceError(w, "GetQuote", err)
		return
	}

	writeJSON(w, "GetQuote", http.StatusOK, resp)
}
