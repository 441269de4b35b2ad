package service

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"flexiquote/models"
	"flexiquote/repository"
	"flexiquote/utils"
)

//go:embed templates/quote.html
var quoteTemplateHTML string

var quoteTemplate = template.Must(template.New("quote").Parse(quoteTemplateHTML))

// QuoteDocumentService renders persisted quotes as HTML/PDF documents and exports them
type QuoteDocumentService struct {
	quoteRepo   repository.QuoteRepositoryInterface
	productRepo repository.ProductRepositoryInterface
	printer     PDFPrinter
	drive       DriveServiceInterface // nil when export is disabled
	folderID    string
	baseURL     string // Base URL the headless browser loads the HTML document from
	logoDataURI string
}

// NewQuoteDocumentService creates a new QuoteDocumentService
// drive may be nil, in which case Export returns ErrExportDisabled
func NewQuoteDocumentService(
	quoteRepo repository.QuoteRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	drive DriveServiceInterface,
	folderID string,
	baseURL string,
	chromePath string,
	logoPath string,
) *QuoteDocumentService {
	logo := ""
	if logoPath != "" {
		var err error
		if logo, err = LoadLogo(logoPath); err != nil {
			log.Printf("⚠️  Quote logo unavailable (%s): %v", logoPath, err)
		}
	}
	return &QuoteDocumentService{
		quoteRepo:   quoteRepo,
		productRepo: productRepo,
		printer:     chromePrinter{chromePath: chromePath},
		drive:       drive,
		folderID:    folderID,
		baseURL:     baseURL,
		logoDataURI: logo,
	}
}

// Ensure QuoteDocumentService implements QuoteDocumentServiceInterface
var _ QuoteDocumentServiceInterface = (*QuoteDocumentService)(nil)

type documentLine struct {
	Label  string
	Amount string
}

type documentAttribute struct {
	Name  string
	Value string
}

type quoteDocument struct {
	Reference    string
	QuoteID      int64
	CreatedAt    string
	ProductName  string
	Quantity     int
	Attributes   []documentAttribute
	AppliedRules []documentLine
	Subtotal     string
	Adjustments  string
	Discount     string
	FinalTotal   string
	NeedsManager bool
	Threshold    string
	LogoDataURI  template.URL
}

// RenderHTML renders the quote document for quoteID
func (s *QuoteDocumentService) RenderHTML(ctx context.Context, quoteID int64) (string, error) {
	quote, err := loadQuote(ctx, s.quoteRepo, quoteID)
	if err != nil {
		return "", err
	}

	productName := fmt.Sprintf("Product #%d", quote.ProductID)
	product, err := s.productRepo.GetByID(ctx, quote.ProductID)
	switch {
	case err == nil:
		productName = product.Name
	case !errors.Is(err, repository.ErrNotFound):
		return "", err
	}

	breakdown, err := decodeBreakdown(quote.Breakdown)
	if err != nil {
		return "", fmt.Errorf("quote %d: %w", quoteID, err)
	}

	doc := quoteDocument{
		Reference:    quote.Reference,
		QuoteID:      quote.ID,
		CreatedAt:    quote.CreatedAt.Format("2006-01-02 15:04 MST"),
		ProductName:  productName,
		Quantity:     quote.Quantity,
		Attributes:   documentAttributes(quote.Attributes),
		Subtotal:     utils.FormatMoney(quote.Subtotal),
		Adjustments:  utils.FormatMoney(quote.AdjustmentsTotal),
		Discount:     utils.FormatMoney(quote.DiscountTotal),
		FinalTotal:   utils.FormatMoney(quote.FinalTotal),
		NeedsManager: quote.ApprovalStatus == models.ApprovalManagerRequired,
		Threshold:    utils.FormatMoney(decimal.NewFromInt(quote.ApprovalThreshold)),
		// Generated by OptimizeLogo, never user input
		LogoDataURI: template.URL(s.logoDataURI),
	}
	for _, r := range breakdown.AppliedRules {
		amount := decimal.NewFromFloat(r.Amount)
		if r.RuleType != models.RuleTypeConfigAdjustment {
			amount = amount.Neg()
		}
		doc.AppliedRules = append(doc.AppliedRules, documentLine{Label: r.Name, Amount: utils.FormatMoney(amount)})
	}

	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the HTML document for quoteID through headless Chrome
func (s *QuoteDocumentService) GeneratePDF(ctx context.Context, quoteID int64) ([]byte, error) {
	if _, err := loadQuote(ctx, s.quoteRepo, quoteID); err != nil {
		return nil, err
	}
	renderURL := fmt.Sprintf("%s/quotes/%d/document?format=html", s.baseURL, quoteID)
	log.Printf("📄 GeneratePDF: rendering %s", renderURL)
	return s.printer.PrintToPDF(ctx, renderURL)
}

// Export generates the quote PDF and uploads it to the configured Drive folder
func (s *QuoteDocumentService) Export(ctx context.Context, quoteID int64) (*models.ExportResponse, error) {
	if s.drive == nil || s.folderID == "" {
		return nil, ErrExportDisabled
	}
	quote, err := loadQuote(ctx, s.quoteRepo, quoteID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.GeneratePDF(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("quote-%s.pdf", quote.Reference)
	fileID, err := s.drive.UploadPDF(ctx, s.folderID, name, pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to export quote %d: %w", quoteID, err)
	}

	log.Printf("✅ Export: quote %d uploaded as %s", quoteID, name)
	return &models.ExportResponse{
		QuoteID:     quoteID,
		DriveFileID: fileID,
		FileName:    name,
	}, nil
}

func documentAttributes(attrs map[string]any) []documentAttribute {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]documentAttribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, documentAttribute{Name: k, Value: fmt.Sprint(attrs[k])})
	}
	return out
}
