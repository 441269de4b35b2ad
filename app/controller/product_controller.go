package controller

import (
	"log"
	"net/http"

	"flexiquote/service"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	service service.QuoteServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(svc service.QuoteServiceInterface) *ProductController {
	return &ProductController{
		service: svc,
	}
}

// ListProducts handles GET /products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, "ListProducts", err)
		return
	}

	writeJSON(w, "ListProducts", http.StatusOK, products)
}
