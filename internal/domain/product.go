package domain

// ProductType classifies a product for the AR overlay selection on the client
type ProductType string

const (
	TypeClothing    ProductType = "clothing"
	TypeShoes       ProductType = "shoes"
	TypeFurniture   ProductType = "furniture"
	TypeJewelry     ProductType = "jewelry"
	TypeGlasses     ProductType = "glasses"
	TypeElectronics ProductType = "electronics"
	TypeGeneral     ProductType = "general"
)

// Wearable reports whether products of this type get background removal
// so they can be composited onto the camera feed.
func (t ProductType) Wearable() bool {
	switch t {
	case TypeClothing, TypeShoes, TypeJewelry, TypeGlasses:
		return true
	}
	return false
}

// SizeChart maps a size label to its raw measurement cells (measurement name -> text)
type SizeChart map[string]map[string]string

// Measurements maps a size label to parsed numeric body measurements.
// Present only for clothing and shoe products.
type Measurements map[string]map[string]float64

// Dimensions holds physical product dimensions parsed from free text.
// Nil fields were not found on the page.
type Dimensions struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Reviews summarizes the product's review widget. Zero values when absent.
type Reviews struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// ImageMetadata describes a processed product image
type ImageMetadata struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	HasAlpha bool `json:"hasAlpha"`
}

// ProcessedImage is the per-image result of the AR image pipeline.
// On failure Processed falls back to Original and Error carries the cause.
type ProcessedImage struct {
	Original  string         `json:"original"`
	Processed string         `json:"processed"`
	Metadata  *ImageMetadata `json:"metadata,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// ProductRecord is the normalized output of a single extraction.
// It is built fresh per request and never persisted.
type ProductRecord struct {
	ID              *string           `json:"id,omitempty"`
	Name            string            `json:"name"`
	Price           *float64          `json:"price,omitempty"`
	Images          []string          `json:"images"`
	Description     string            `json:"description"`
	Specifications  map[string]string `json:"specifications"`
	SizeChart       SizeChart         `json:"sizeChart"`
	Dimensions      Dimensions        `json:"dimensions"`
	Category        string            `json:"category"`
	Materials       []string          `json:"materials"`
	Colors          []string          `json:"colors"`
	Reviews         Reviews           `json:"reviews"`
	Type            ProductType       `json:"type"`
	Measurements    Measurements      `json:"measurements,omitempty"`
	ProcessedImages []ProcessedImage  `json:"processedImages"`
	URL             string            `json:"url"`
}

// ExtractRequest is the inbound payload for product extraction
type ExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

// Recommendation is the opaque response produced by the sizing microservice
type Recommendation map[string]interface{}

// SizeRecommendationRequest mirrors the sizing microservice contract:
// pose landmarks plus the dimensions of the frame they were detected in,
// and the product data the recommendation is for.
type SizeRecommendationRequest struct {
	BodyLandmarks   []map[string]float64   `json:"bodyLandmarks" binding:"required"`
	ImageDimensions []int                  `json:"imageDimensions" binding:"required"`
	ProductData     map[string]interface{} `json:"productData" binding:"required"`
}

// FurniturePlacementRequest asks the sizing microservice whether a
// furniture product fits in the scanned room.
type FurniturePlacementRequest struct {
	RoomData      map[string]interface{} `json:"roomData" binding:"required"`
	FurnitureData map[string]interface{} `json:"furnitureData" binding:"required"`
}
