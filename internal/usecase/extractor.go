package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sailwalpranjal/SMART/internal/domain"
)

// ExtractorConfig holds configuration for the product extractor
type ExtractorConfig struct {
	// MaxProcessedImages caps the AR image pipeline; 0 disables it
	MaxProcessedImages int
}

// Extractor turns a retailer product-page URL into a normalized
// ProductRecord. It holds no state between calls: every extraction
// re-fetches and re-processes from scratch.
type Extractor struct {
	fetcher      domain.PageFetcher
	processor    domain.ImageProcessor
	remover      domain.BackgroundRemover
	maxProcessed int
}

// NewExtractor creates a product extractor with its dependencies
func NewExtractor(
	fetcher domain.PageFetcher,
	processor domain.ImageProcessor,
	remover domain.BackgroundRemover,
	config ExtractorConfig,
) *Extractor {
	maxProcessed := config.MaxProcessedImages
	if maxProcessed < 0 {
		maxProcessed = 5
	}

	return &Extractor{
		fetcher:      fetcher,
		processor:    processor,
		remover:      remover,
		maxProcessed: maxProcessed,
	}
}

// Extract fetches and parses a product page. Any failure surfaces as the
// single opaque ErrExtractionFailed; the cause chain is logged here before
// the boundary collapses it.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*domain.ProductRecord, error) {
	record, err := e.extract(ctx, rawURL)
	if err != nil {
		log.Printf("[EXTRACT] %s: %v", rawURL, err)
		return nil, domain.ErrExtractionFailed
	}
	return record, nil
}

func (e *Extractor) extract(ctx context.Context, rawURL string) (*domain.ProductRecord, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("url must be absolute http(s): %q", rawURL)
	}

	page, err := e.fetcher.Page(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	record := &domain.ProductRecord{URL: rawURL}
	record.ID = extractProductID(parsed.Path)
	record.Name = firstText(doc, nameSelectors)
	record.Price = parsePrice(firstText(doc, priceSelectors))
	record.Images = extractImages(doc)
	record.Description = firstText(doc, descriptionSelectors)
	record.Specifications = extractSpecifications(doc)
	record.SizeChart = extractSizeChart(doc)
	record.Dimensions = parseDimensions(extractDimensionText(doc, record.Specifications))
	record.Category = extractCategory(doc)
	record.Materials = extractMaterials(doc, record.Specifications)
	record.Colors = extractColors(doc)
	record.Reviews = extractReviews(doc)

	// Classification reads category and name, so it runs after all field
	// extraction; measurements only exist for sized product types.
	record.Type = classifyProductType(record.Category, record.Name)
	if record.Type == domain.TypeClothing || record.Type == domain.TypeShoes {
		record.Measurements = deriveMeasurements(record.SizeChart)
	}

	record.ProcessedImages = e.processImages(ctx, record)

	return record, nil
}
