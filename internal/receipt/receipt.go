// Package receipt turns an uploaded receipt image into a best-guess expense
// draft. Drafts are suggestions only and go through normal expense validation
// before anything is saved.
package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"log/slog"
)

// MaxImageBytes bounds accepted uploads.
const MaxImageBytes = 10 << 20

var (
	ErrEmptyImage    = errors.New("receipt image is empty")
	ErrImageTooLarge = fmt.Errorf("receipt image exceeds %d bytes", MaxImageBytes)
	ErrNotAnImage    = errors.New("receipt is not a supported image (png, jpeg, gif)")
)

// Draft is an extracted expense guess.
type Draft struct {
	Amount      float64
	Category    string
	Description string
}

// Extractor reads a receipt image.
type Extractor interface {
	Extract(ctx context.Context, image []byte) (Draft, error)
}

// PlaceholderExtractor checks that the upload is a decodable image and returns
// a fixed draft for the user to edit. It stands in until an OCR backend is
// configured.
type PlaceholderExtractor struct{}

// NewPlaceholderExtractor creates the default extractor.
func NewPlaceholderExtractor() *PlaceholderExtractor {
	return &PlaceholderExtractor{}
}

// Extract validates the image and returns the placeholder draft.
func (PlaceholderExtractor) Extract(ctx context.Context, img []byte) (Draft, error) {
	if err := CheckImage(img); err != nil {
		return Draft{}, err
	}
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}

	return Draft{
		Amount:      459.0,
		Category:    "Food",
		Description: "Receipt (edit if needed)",
	}, nil
}

// CheckImage verifies img is non-empty, within MaxImageBytes and has a
// decodable image header.
func CheckImage(img []byte) error {
	if len(img) == 0 {
		return ErrEmptyImage
	}
	if len(img) > MaxImageBytes {
		return ErrImageTooLarge
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	slog.Debug("Receipt image accepted", "format", format, "width", cfg.Width, "height", cfg.Height)
	return nil
}
