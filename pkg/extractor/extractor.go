// Package extractor drives batched page rasterization and OCR over a
// scanned PDF, returning page texts in ascending page order.
package extractor

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync/atomic"

	"github.com/disintegration/imaging"

	"github.com/payrawsa/pdf-to-text/pkg/config"
	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/interfaces"
	"github.com/payrawsa/pdf-to-text/pkg/logger"
	"github.com/payrawsa/pdf-to-text/pkg/types"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// Extractor is the batch page-text extractor. It serializes all public
// operations through a busy flag: a second call while one is in flight
// fails with a Busy error and leaves the in-flight call untouched.
type Extractor struct {
	config *config.Config
	logger *logger.Logger
	raster interfaces.Rasterizer
	engine interfaces.OCREngine
	busy   atomic.Bool
}

// Ensure Extractor implements the PageExtractor interface
var _ interfaces.PageExtractor = (*Extractor)(nil)

// New creates an extractor bound to a rasterizer and an OCR engine.
// The configuration is copied so later mutation by the caller cannot
// affect a job in flight.
func New(cfg *config.Config, log *logger.Logger, raster interfaces.Rasterizer, engine interfaces.OCREngine) *Extractor {
	return &Extractor{
		config: cfg.Clone(),
		logger: log,
		raster: raster,
		engine: engine,
	}
}

// acquire flips the extractor from Idle to Busy, failing fast when a call
// is already in flight.
func (e *Extractor) acquire() error {
	if !e.busy.CompareAndSwap(false, true) {
		return utils.NewBusyError(constants.ErrBusyExtractor)
	}
	return nil
}

// release returns the extractor to Idle. Always runs, success or failure.
func (e *Extractor) release() {
	e.busy.Store(false)
}

// ExtractPages returns the recognized text of each processed page in
// ascending page order.
func (e *Extractor) ExtractPages(ctx context.Context, path string, opts types.ExtractOptions) ([]string, error) {
	if err := e.acquire(); err != nil {
		return nil, err
	}
	defer e.release()

	return e.extractPages(ctx, path, opts)
}

// ExtractText returns the page texts joined by a blank-line separator.
func (e *Extractor) ExtractText(ctx context.Context, path string, opts types.ExtractOptions) (string, error) {
	if err := e.acquire(); err != nil {
		return "", err
	}
	defer e.release()

	return e.extractText(ctx, path, opts)
}

// extractText is the lock-free body of ExtractText, shared with the
// chunked export which already holds the busy flag.
func (e *Extractor) extractText(ctx context.Context, path string, opts types.ExtractOptions) (string, error) {
	pages, err := e.extractPages(ctx, path, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, constants.PageSeparator), nil
}

// extractPages is the lock-free body of ExtractPages.
func (e *Extractor) extractPages(ctx context.Context, path string, opts types.ExtractOptions) ([]string, error) {
	path = utils.NormalizePath(path)

	startPage := opts.StartPage
	if startPage < 1 {
		startPage = 1
	}

	// Keep images when either the call or the configuration asks for it,
	// so the chunked export honors the setting too
	keepImages := opts.KeepImages || e.config.KeepImages

	e.logger.ProgressAlways("📄", "Extracting text from PDF: %s", path)

	if !utils.FileExists(path) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("PDF file not found: %s", path), nil)
	}

	lastPage, err := e.resolveLastPage(ctx, path, startPage, opts.MaxPages)
	if err != nil {
		return nil, err
	}

	e.logger.Progress("🔎", "Processing pages %d to %d in batches of %d",
		startPage, lastPage, e.config.BatchSize)

	tracker := utils.NewTempImageTracker(e.logger)

	var texts []string
	err = tracker.WithCleanup(func() error {
		for batchStart := startPage; batchStart <= lastPage; batchStart += e.config.BatchSize {
			batchEnd := batchStart + e.config.BatchSize - 1
			if batchEnd > lastPage {
				batchEnd = lastPage
			}

			batchTexts, err := e.processBatch(ctx, path, types.PageRange{First: batchStart, Last: batchEnd}, keepImages, tracker)
			if err != nil {
				return err
			}
			texts = append(texts, batchTexts...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.ProgressAlways("✅", "Extracted text from %d pages", len(texts))
	return texts, nil
}

// resolveLastPage determines the last page to process. With an explicit
// page limit the bound is arithmetic; otherwise the document's true page
// count is used, after a deadline-bounded probe of page 1 has shown the
// file actually renders.
func (e *Extractor) resolveLastPage(ctx context.Context, path string, startPage, maxPages int) (int, error) {
	if maxPages > 0 {
		return startPage + maxPages - 1, nil
	}

	probe, err := runWithDeadline(ctx, e.config.ProbeTimeout, func(taskCtx context.Context) ([]image.Image, error) {
		return e.raster.RenderPages(taskCtx, path, types.PageRange{First: 1, Last: 1}, e.config.DPI)
	})
	if err != nil {
		return 0, err
	}
	if len(probe) == 0 {
		return 0, utils.NewRasterError(constants.ErrNoPagesFound, nil)
	}

	total, err := e.raster.PageCount(path)
	if err != nil {
		return 0, err
	}

	e.logger.Progress("📚", "Document has %d pages", total)
	return total, nil
}

// processBatch rasterizes one page batch under the batch deadline and runs
// OCR over each resulting page image. Rendered images not kept are removed
// immediately after recognition; the caller's tracker sweeps survivors on
// any exit path.
func (e *Extractor) processBatch(ctx context.Context, path string, batch types.PageRange, keepImages bool, tracker *utils.TempImageTracker) ([]string, error) {
	e.logger.Progress("🔄", "Processing batch: pages %d to %d", batch.First, batch.Last)

	images, err := runWithDeadline(ctx, e.config.BatchTimeout, func(taskCtx context.Context) ([]image.Image, error) {
		return e.raster.RenderPages(taskCtx, path, batch, e.config.DPI)
	})
	if err != nil {
		return nil, err
	}

	if len(images) == 0 {
		e.logger.Warn("No images generated for pages %d-%d", batch.First, batch.Last)
		return nil, nil
	}

	texts := make([]string, 0, len(images))
	for i, img := range images {
		pageNum := batch.First + i
		imagePath := e.config.TempImagePath(pageNum)

		e.logger.Progress("🖼️", "Saving temporary image: %s", imagePath)
		if err := imaging.Save(img, imagePath); err != nil {
			return nil, utils.NewIOError(fmt.Sprintf("failed to save page image: %s", imagePath), err)
		}
		if !keepImages {
			tracker.Register(imagePath)
		}

		text, err := e.engine.ExtractTextFromImage(ctx, imagePath)
		if err != nil {
			return nil, err
		}

		e.logger.Progress("📝", "Extracted text from page %d", pageNum)
		texts = append(texts, text)

		if !keepImages {
			tracker.Remove(imagePath)
		}
	}

	return texts, nil
}
