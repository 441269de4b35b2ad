package controller

import (
	"log"
	"net/http"

	"flexiquote/service"
)

// RuleController handles HTTP requests for pricing rules
type RuleController struct {
	service service.QuoteServiceInterface
}

// NewRuleController creates a new RuleController
func NewRuleController(svc service.QuoteServiceInterface) *RuleController {
	return &RuleController{
		service: svc,
	}
}

// ListRules handles GET /rules
// Returns every rule, including inactive ones, in evaluation order
func (c *RuleController) ListRules(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListRules: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rules, err := c.service.ListRules(r.Context())
	if err != nil {
		writeServiceError(w, "ListRules", err)
		return
	}

	log.Printf("✅ ListRules: Returning %d rules", len(rules))
	writeJSON(w, "ListRules", http.StatusOK, rules)
}
