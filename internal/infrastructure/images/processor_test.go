package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG builds a PNG test image of the given size. When transparent is
// set, one corner pixel gets a zero alpha value.
func encodePNG(t *testing.T, width, height int, transparent bool) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	if transparent {
		img.Set(0, 0, color.NRGBA{A: 0})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMetadata(t *testing.T) {
	p := NewProcessor(2048, 90)

	t.Run("reads dimensions", func(t *testing.T) {
		meta, err := p.Metadata(encodePNG(t, 40, 30, false))
		require.NoError(t, err)
		assert.Equal(t, 40, meta.Width)
		assert.Equal(t, 30, meta.Height)
	})

	t.Run("detects transparency", func(t *testing.T) {
		meta, err := p.Metadata(encodePNG(t, 10, 10, true))
		require.NoError(t, err)
		assert.True(t, meta.HasAlpha)
	})

	t.Run("opaque image has no alpha", func(t *testing.T) {
		meta, err := p.Metadata(encodePNG(t, 10, 10, false))
		require.NoError(t, err)
		assert.False(t, meta.HasAlpha)
	})

	t.Run("rejects non-image bytes", func(t *testing.T) {
		_, err := p.Metadata([]byte("not an image"))
		assert.Error(t, err)
	})
}

func TestProcess(t *testing.T) {
	t.Run("keeps small images at original size", func(t *testing.T) {
		p := NewProcessor(64, 90)

		encoded, meta, err := p.Process(encodePNG(t, 32, 16, false))
		require.NoError(t, err)
		assert.Equal(t, 32, meta.Width)
		assert.Equal(t, 16, meta.Height)

		decoded, err := jpeg.Decode(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, 32, decoded.Bounds().Dx())
	})

	t.Run("resizes oversized images to fit preserving aspect ratio", func(t *testing.T) {
		p := NewProcessor(64, 90)

		_, meta, err := p.Process(encodePNG(t, 128, 64, false))
		require.NoError(t, err)
		assert.Equal(t, 64, meta.Width)
		assert.Equal(t, 32, meta.Height)
	})

	t.Run("resizes when only height exceeds the bound", func(t *testing.T) {
		p := NewProcessor(64, 90)

		_, meta, err := p.Process(encodePNG(t, 32, 128, false))
		require.NoError(t, err)
		assert.Equal(t, 16, meta.Width)
		assert.Equal(t, 64, meta.Height)
	})

	t.Run("preserves source alpha flag through JPEG re-encode", func(t *testing.T) {
		p := NewProcessor(64, 90)

		_, meta, err := p.Process(encodePNG(t, 10, 10, true))
		require.NoError(t, err)
		assert.True(t, meta.HasAlpha)
	})

	t.Run("fails on undecodable input", func(t *testing.T) {
		p := NewProcessor(64, 90)

		_, _, err := p.Process([]byte{0x00, 0x01, 0x02})
		assert.Error(t, err)
	})
}

func TestDataURI(t *testing.T) {
	p := NewProcessor(64, 90)

	uri := p.DataURI([]byte{0xFF, 0xD8})
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	assert.Greater(t, len(uri), len("data:image/jpeg;base64,"))
}

func TestNewProcessor_Defaults(t *testing.T) {
	p := NewProcessor(0, 0)
	assert.Equal(t, 2048, p.maxDimension)
	assert.Equal(t, 90, p.quality)
}
