// Package pdf renders PDF pages to images using MuPDF via go-fitz.
package pdf

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/payrawsa/pdf-to-text/pkg/interfaces"
	"github.com/payrawsa/pdf-to-text/pkg/logger"
	"github.com/payrawsa/pdf-to-text/pkg/types"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// FitzRasterizer implements interfaces.Rasterizer on top of MuPDF.
type FitzRasterizer struct {
	logger *logger.Logger
}

// Ensure FitzRasterizer implements the Rasterizer interface
var _ interfaces.Rasterizer = (*FitzRasterizer)(nil)

// NewFitzRasterizer creates a MuPDF-backed rasterizer
func NewFitzRasterizer(log *logger.Logger) *FitzRasterizer {
	return &FitzRasterizer{logger: log}
}

// PageCount returns the total number of pages in the document
func (r *FitzRasterizer) PageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, utils.NewRasterError(fmt.Sprintf("failed to open PDF: %s", path), err)
	}
	defer doc.Close()

	return doc.NumPage(), nil
}

// RenderPages renders the inclusive 1-indexed page range at the given DPI.
// Pages past the end of the document are omitted, so a range that starts
// beyond the last page yields an empty slice.
func (r *FitzRasterizer) RenderPages(ctx context.Context, path string, pages types.PageRange, dpi int) ([]image.Image, error) {
	if pages.First < 1 || pages.Last < pages.First {
		return nil, utils.NewValidationError(
			fmt.Sprintf("invalid page range %d-%d", pages.First, pages.Last), nil)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, utils.NewRasterError(fmt.Sprintf("failed to open PDF: %s", path), err)
	}
	defer doc.Close()

	last := pages.Last
	if total := doc.NumPage(); last > total {
		last = total
	}

	var images []image.Image
	for pageNum := pages.First; pageNum <= last; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeTimeout,
				fmt.Sprintf("rasterization aborted at page %d", pageNum))
		}

		// go-fitz pages are 0-indexed
		img, err := doc.ImageDPI(pageNum-1, float64(dpi))
		if err != nil {
			return nil, utils.NewRasterError(
				fmt.Sprintf("failed to render page %d of %s", pageNum, path), err)
		}

		r.logger.Debug("Rendered page %d at %d DPI (%dx%d)",
			pageNum, dpi, img.Bounds().Dx(), img.Bounds().Dy())
		images = append(images, img)
	}

	return images, nil
}
