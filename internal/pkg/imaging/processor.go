package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Config for evidence image processing
type Config struct {
	MaxWidth  int
	MaxHeight int
	Quality   int // JPEG quality 1-100
}

// DefaultConfig returns sensible processing defaults
func DefaultConfig() Config {
	return Config{
		MaxWidth:  2048,
		MaxHeight: 2048,
		Quality:   85,
	}
}

// Processor normalizes evidence images before they are sent upstream
type Processor struct {
	config Config
}

// NewProcessor creates an image processor
func NewProcessor(config Config) *Processor {
	if config.MaxWidth <= 0 || config.MaxHeight <= 0 {
		config = DefaultConfig()
	}
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = 85
	}
	return &Processor{config: config}
}

// Process decodes an image, downsizes it when it exceeds the configured
// bounds, and re-encodes it in its original format.
func (p *Processor) Process(reader io.Reader) ([]byte, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.config.MaxWidth || bounds.Dy() > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
	}

	return p.encode(img, format)
}

func (p *Processor) encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.config.Quality}); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// ValidateType checks if file is a processable image type
func ValidateType(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	default:
		return false
	}
}

// ValidateSize checks if file size is within limits (in bytes)
func ValidateSize(size int64, maxSize int64) bool {
	return size <= maxSize
}
