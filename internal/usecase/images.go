package usecase

import (
	"context"
	"log"

	"github.com/sailwalpranjal/SMART/internal/domain"
)

// processImages runs the AR image pipeline over the first images of the
// record, up to the configured cap. The loop is sequential on purpose:
// it bounds peak memory and concurrent fetches per request.
func (e *Extractor) processImages(ctx context.Context, record *domain.ProductRecord) []domain.ProcessedImage {
	limit := min(e.maxProcessed, len(record.Images))
	processed := make([]domain.ProcessedImage, 0, limit)
	for _, src := range record.Images[:limit] {
		processed = append(processed, e.processImage(ctx, src, record.Type))
	}
	return processed
}

// processImage runs one image through fetch, optional background removal,
// resize and re-encode. Failure at any step degrades this image to its
// original URL with the error recorded; it never affects other images or
// the extraction as a whole.
func (e *Extractor) processImage(ctx context.Context, src string, productType domain.ProductType) domain.ProcessedImage {
	data, _, err := e.fetcher.Bytes(ctx, src)
	if err != nil {
		return failedImage(src, err)
	}

	if productType.Wearable() && e.remover != nil && e.remover.Enabled() {
		cut, err := e.remover.Remove(ctx, data)
		if err != nil {
			// Non-fatal: keep the original bytes
			log.Printf("[IMAGES] background removal failed for %s: %v", src, err)
		} else {
			data = cut
		}
	}

	encoded, meta, err := e.processor.Process(data)
	if err != nil {
		return failedImage(src, err)
	}

	return domain.ProcessedImage{
		Original:  src,
		Processed: e.processor.DataURI(encoded),
		Metadata:  meta,
	}
}

func failedImage(src string, err error) domain.ProcessedImage {
	return domain.ProcessedImage{
		Original:  src,
		Processed: src,
		Error:     err.Error(),
	}
}
