package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/sailwalpranjal/SMART/internal/domain"
)

// Processor decodes, resizes and re-encodes product images for AR use.
// Output is always JPEG at a fixed quality; alpha information from the
// source image is preserved in the metadata so the client knows whether
// the original had transparency.
type Processor struct {
	maxDimension int
	quality      int
}

// NewProcessor creates an image processor with the given bounds
func NewProcessor(maxDimension, quality int) *Processor {
	if maxDimension < 1 {
		maxDimension = 2048
	}
	if quality < 1 || quality > 100 {
		quality = 90
	}
	return &Processor{
		maxDimension: maxDimension,
		quality:      quality,
	}
}

// Metadata reads image dimensions and alpha information without transforming
func (p *Processor) Metadata(data []byte) (*domain.ImageMetadata, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	return &domain.ImageMetadata{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		HasAlpha: hasAlpha(img),
	}, nil
}

// Process resizes the image to fit within the configured bounds when either
// dimension exceeds them, preserving aspect ratio, and re-encodes as JPEG.
// Returned metadata carries the output dimensions and the source alpha flag.
func (p *Processor) Process(data []byte) ([]byte, *domain.ImageMetadata, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	alpha := hasAlpha(img)
	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), &domain.ImageMetadata{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		HasAlpha: alpha,
	}, nil
}

// DataURI wraps encoded JPEG bytes as an embeddable data URI
func (p *Processor) DataURI(data []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

// hasAlpha reports whether the decoded image carries any transparency
func hasAlpha(img image.Image) bool {
	if opaque, ok := img.(interface{ Opaque() bool }); ok {
		return !opaque.Opaque()
	}
	return false
}
