package interfaces

import (
	"context"
	"image"

	"github.com/payrawsa/pdf-to-text/pkg/types"
)

// Rasterizer renders PDF pages to in-memory images.
type Rasterizer interface {
	// RenderPages renders the inclusive 1-indexed page range at the given DPI.
	// Pages beyond the end of the document are silently omitted from the
	// result, so the returned slice may be shorter than the requested range.
	RenderPages(ctx context.Context, path string, pages types.PageRange, dpi int) ([]image.Image, error)

	// PageCount returns the total number of pages in the document.
	PageCount(path string) (int, error)
}

// OCREngine recognizes text in a page image.
type OCREngine interface {
	// Name returns the name of the OCR engine
	Name() string

	// ExtractTextFromImage extracts text from an image file
	ExtractTextFromImage(ctx context.Context, imagePath string) (string, error)

	// GetDescription returns a description of the OCR engine
	GetDescription() string
}

// PageExtractor drives batched rasterization and OCR over a document.
// Implementations reject concurrent calls: any operation invoked while
// another is in flight fails with a Busy error.
type PageExtractor interface {
	// ExtractPages returns the recognized text of each processed page in
	// ascending page order.
	ExtractPages(ctx context.Context, path string, opts types.ExtractOptions) ([]string, error)

	// ExtractText returns the page texts joined by a blank-line separator.
	ExtractText(ctx context.Context, path string, opts types.ExtractOptions) (string, error)

	// ExportChunks processes pages 1..maxPages in fixed-size windows, writes
	// one text file per window plus a combined file, and returns the combined
	// text.
	ExportChunks(ctx context.Context, path string, maxPages int) (*types.ExportResult, error)
}
