package upload

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// Compressor shrinks raster images before they are stored.
type Compressor struct {
	MaxWidth    int
	JPEGQuality int
}

// Compress downsizes images wider than MaxWidth and re-encodes JPEG and
// PNG. GIF and WebP are returned unchanged so animation survives.
func (c Compressor) Compress(data []byte, mime string) ([]byte, error) {
	var format imaging.Format
	switch mime {
	case MIMEJPEG:
		format = imaging.JPEG
	case MIMEPNG:
		format = imaging.PNG
	default:
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := false
	if c.MaxWidth > 0 && img.Bounds().Dx() > c.MaxWidth {
		img = imaging.Resize(img, c.MaxWidth, 0, imaging.Lanczos)
		resized = true
	}

	var buf bytes.Buffer
	opts := []imaging.EncodeOption{imaging.PNGCompressionLevel(png.BestCompression)}
	if c.JPEGQuality > 0 {
		opts = append(opts, imaging.JPEGQuality(c.JPEGQuality))
	}
	if err := imaging.Encode(&buf, img, format, opts...); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	// Re-encoding can grow an already well-compressed file.
	if !resized && buf.Len() >= len(data) {
		return data, nil
	}
	return buf.Bytes(), nil
}
