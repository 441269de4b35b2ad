package router

import (
	"net/http"
	"strings"

	"flexiquote/app/controller"
)

type Controllers struct {
	Quote    *controller.QuoteController
	Document *controller.DocumentController
	Rule     *controller.RuleController
	Product  *controller.ProductController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes on the default mux
func SetupRoutes(controllers *Controllers) {
	RegisterRoutes(http.DefaultServeMux, controllers)
}

// RegisterRoutes registers all routes on mux
func RegisterRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Configuration check (adjustments only)
	mux.HandleFunc("/configure", controllers.Quote.Configure)

	// Create quote
	mux.HandleFunc("/quote", controllers.Quote.CreateQuote)

	// Quote by id and its actions
	mux.HandleFunc("/quotes/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/quotes/")

		if strings.HasSuffix(path, "/document") {
			controllers.Document.GetDocument(w, r)
			return
		}
		if strings.HasSuffix(path, "/export") {
			controllers.Document.Export(w, r)
			return
		}
		if path != "" && !strings.Contains(path, "/") {
			controllers.Quote.GetQuote(w, r)
			return
		}

		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Rule inspection
	mux.HandleFunc("/rules", controllers.Rule.ListRules)

	// Product catalogue
	mux.HandleFunc("/products", controllers.Product.ListProducts)
}
