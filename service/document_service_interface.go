package service

import (
	"context"

	"flexiquote/models"
)

// QuoteDocumentServiceInterface defines the contract for quote document operations
type QuoteDocumentServiceInterface interface {
	RenderHTML(ctx context.Context, quoteID int64) (string, error)
	GeneratePDF(ctx context.Context, quoteID int64) ([]byte, error)
	Export(ctx context.Context, quoteID int64) (*models.ExportResponse, error)
}

// PDFPrinter renders a URL to PDF bytes
type PDFPrinter interface {
	PrintToPDF(ctx context.Context, renderURL string) ([]byte, error)
}
