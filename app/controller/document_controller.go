package controller

import (
	"fmt"
	"log"
	"net/http"

	"flexiquote/service"
)

// DocumentController handles HTTP requests for quote documents
type DocumentController struct {
	service service.QuoteDocumentServiceInterface
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(svc service.QuoteDocumentServiceInterface) *DocumentController {
	return &DocumentController{
		service: svc,
	}
}

// GetDocument handles GET /quotes/:id/document?format=html|pdf
// html is the default format; pdf is rendered by headless Chrome from the html document
func (c *DocumentController) GetDocument(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetDocument: Received %s request to %s", r.Method, r.URL.String())

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quoteID, err := quoteIDFromPath(r.URL.Path, "/document")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "html":
		html, err := c.service.RenderHTML(r.Context(), quoteID)
		if err != nil {
			writeServiceError(w, "GetDocument", err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	case "pdf":
		pdf, err := c.service.GeneratePDF(r.Context(), quoteID)
		if err != nil {
			writeServiceError(w, "GetDocument", err)
			return
		}
		log.Printf("✅ GetDocument: Generated PDF for quote %d (%d bytes)", quoteID, len(pdf))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%d.pdf"`, quoteID))
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
	default:
		log.Printf("❌ GetDocument: Unsupported format: %s", format)
		http.Error(w, "format must be html or pdf", http.StatusBadRequest)
	}
}

// Export handles POST /quotes/:id/export
// Example response:
// {"quote_id": 12, "drive_file_id": "1AbC...", "file_name": "quote-2f1d7c9e-....pdf"}
func (c *DocumentController) Export(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Export: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quoteID, err := quoteIDFromPath(r.URL.Path, "/export")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := c.service.Export(r.Context(), quoteID)
	if err != nil {
		writeServiceError(w, "Export", err)
		return
	}

	writeJSON(w, "Export", http.StatusOK, resp)
}
