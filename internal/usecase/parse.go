package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sailwalpranjal/SMART/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// productIDPattern matches retailer product URLs of the form /ip/<slug>/<digits>
	productIDPattern = regexp.MustCompile(`/ip/[^/]+/(\d+)`)

	// pricePattern matches the first currency-like numeric substring:
	// optional $, digits with optional thousands separators, optional decimals
	pricePattern = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d+)?)`)

	// thumbSizePattern matches embedded thumbnail size tokens like _100x100
	thumbSizePattern = regexp.MustCompile(`_\d+[xX]\d+`)

	// dimensionPattern matches tokens like `24" W`, `36 in H`, `18D`
	dimensionPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:["”]|in(?:ch(?:es)?)?\.?)?\s*([WHDL])\b`)

	// measurementRangePattern matches ranges like 32-34
	measurementRangePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)

	// measurementValuePattern matches a single numeric value
	measurementValuePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// countPattern extracts the integer out of review count text like "(1,024 reviews)"
	countPattern = regexp.MustCompile(`[\d,]+`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// extractProductID pulls the numeric product ID out of a /ip/<slug>/<digits>
// URL path. Nil when the path doesn't follow the pattern; that is not an error.
func extractProductID(path string) *string {
	match := productIDPattern.FindStringSubmatch(path)
	if match == nil {
		return nil
	}
	id := match[1]
	return &id
}

// parsePrice extracts the first currency-like number from price text.
// Nil when the text has no parseable non-negative price.
func parsePrice(text string) *float64 {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(match[1], ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

// parseMeasurement parses size chart cell text like "32-34 in" or "86 cm".
// Ranges collapse to their arithmetic mean. Nil when nothing numeric is found.
func parseMeasurement(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if match := measurementRangePattern.FindStringSubmatch(text); match != nil {
		low, errLow := strconv.ParseFloat(match[1], 64)
		high, errHigh := strconv.ParseFloat(match[2], 64)
		if errLow == nil && errHigh == nil {
			mean := (low + high) / 2
			return &mean
		}
	}

	if match := measurementValuePattern.FindString(text); match != "" {
		if value, err := strconv.ParseFloat(match, 64); err == nil {
			return &value
		}
	}

	return nil
}

// parseDimensions extracts width/height/depth from free text like
// `24" W x 36" H x 18" D`. W maps to width, H to height, D and L both to
// depth. When an axis appears more than once the last match wins.
func parseDimensions(text string) domain.Dimensions {
	var dims domain.Dimensions
	for _, match := range dimensionPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		v := value
		switch strings.ToUpper(match[2]) {
		case "W":
			dims.Width = &v
		case "H":
			dims.Height = &v
		case "D", "L":
			dims.Depth = &v
		}
	}
	return dims
}

// normalizeImageURL canonicalizes an image source: query string stripped,
// embedded thumbnail size token removed, protocol-relative URLs upgraded
// to HTTPS. Normalizing an already-normalized URL is a no-op.
func normalizeImageURL(raw string) string {
	url := strings.TrimSpace(raw)
	if idx := strings.Index(url, "?"); idx >= 0 {
		url = url[:idx]
	}
	url = thumbSizePattern.ReplaceAllString(url, "")
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}
	return url
}

// normalizeKey normalizes specification and measurement names:
// lower-cased, whitespace runs replaced with underscores.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return whitespacePattern.ReplaceAllString(key, "_")
}

// parseCount extracts an integer from review count text, tolerating
// thousands separators and surrounding words.
func parseCount(text string) int {
	match := countPattern.FindString(text)
	if match == "" {
		return 0
	}
	count, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0
	}
	return count
}

// deriveMeasurements converts a raw size chart into numeric body
// measurements. Cells that don't parse are dropped; sizes with no
// parseable cells are dropped too. Nil when nothing parsed.
func deriveMeasurements(chart domain.SizeChart) domain.Measurements {
	measurements := make(domain.Measurements)
	for size, cells := range chart {
		parsed := make(map[string]float64)
		for name, text := range cells {
			if value := parseMeasurement(text); value != nil {
				parsed[normalizeKey(name)] = *value
			}
		}
		if len(parsed) > 0 {
			measurements[size] = parsed
		}
	}
	if len(measurements) == 0 {
		return nil
	}
	return measurements
}
