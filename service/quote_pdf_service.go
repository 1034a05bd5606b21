package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"coaxdirect/models"
	"coaxdirect/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// QuotePDFService renders a priced custom cable configuration as a printable
// quote document. Sales staff attach the PDF when answering quote requests.
type QuotePDFService struct {
	baseURL string // Base URL for the render endpoint (e.g., "http://localhost:8080")
}

// NewQuotePDFService creates a new QuotePDFService
func NewQuotePDFService(baseURL string) *QuotePDFService {
	return &QuotePDFService{
		baseURL: baseURL,
	}
}

// QuoteData is the data passed to the quote template
type QuoteData struct {
	QuoteNumber string
	GeneratedAt string
	Item        models.LineItem
	UnitPrice   string // formatted, e.g. "$86.94"
	Quantity    int
	Total       string // formatted, e.g. "$173.88"
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// BuildQuoteData assembles the template data for a priced line item
func BuildQuoteData(item models.LineItem, unitPrice float64) QuoteData {
	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	unitCents := utils.ToMinorUnits(unitPrice)
	totalCents := unitCents * int64(quantity)

	return QuoteData{
		QuoteNumber: item.ID,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Item:        item,
		UnitPrice:   utils.FormatUSD(unitCents),
		Quantity:    quantity,
		Total:       utils.FormatUSD(totalCents),
	}
}

// RenderQuoteHTML renders the quote HTML template
func (s *QuotePDFService) RenderQuoteHTML(data QuoteData) (string, error) {
	templatePath := filepath.Join("templates", "quote.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates a quote PDF by printing the render endpoint with
// headless Chrome. configQuery carries the customizer selection as query
// parameters so the render endpoint can rebuild and re-price it.
func (s *QuotePDFService) GeneratePDF(ctx context.Context, configQuery url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	// Enable Page domain for printing
	if err := chromedp.Run(chromedpCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.Enable().Do(ctx)
	})); err != nil {
		// Log warning but continue
	}

	renderURL := fmt.Sprintf("%s/admin/quote/render?%s", s.baseURL, configQuery.Encode())

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(816, 1056), // US Letter at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1000), // Wait for fonts/layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5). // US Letter
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
