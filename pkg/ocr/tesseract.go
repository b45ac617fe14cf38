// Package ocr provides text recognition for page images using Tesseract
// via gosseract. Tesseract and the language data for the configured
// language must be installed on the system (e.g. tesseract-ocr-ara).
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/payrawsa/pdf-to-text/pkg/config"
	"github.com/payrawsa/pdf-to-text/pkg/interfaces"
	"github.com/payrawsa/pdf-to-text/pkg/logger"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// TesseractEngine implements interfaces.OCREngine using gosseract.
// Recognition runs with fully automatic page segmentation (PSM 3),
// which suits whole scanned pages.
type TesseractEngine struct {
	name   string
	config *config.Config
	logger *logger.Logger
}

// Ensure TesseractEngine implements the OCREngine interface
var _ interfaces.OCREngine = (*TesseractEngine)(nil)

// NewTesseractEngine creates a Tesseract OCR engine
func NewTesseractEngine(cfg *config.Config, log *logger.Logger) *TesseractEngine {
	return &TesseractEngine{
		name:   "tesseract",
		config: cfg,
		logger: log,
	}
}

// Name returns the engine name
func (e *TesseractEngine) Name() string {
	return e.name
}

// GetDescription returns a description of the engine
func (e *TesseractEngine) GetDescription() string {
	return fmt.Sprintf("Tesseract OCR (language: %s, automatic page segmentation)", e.config.Language)
}

// ExtractTextFromImage runs OCR over one page image file.
// A fresh client is used per call so language and page segmentation
// settings never leak between pages.
func (e *TesseractEngine) ExtractTextFromImage(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeTimeout, "OCR cancelled before start")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.config.TessdataPath != "" {
		if err := client.SetTessdataPrefix(e.config.TessdataPath); err != nil {
			return "", utils.NewOCRError("failed to set tessdata path", err)
		}
	}

	if err := client.SetLanguage(e.config.Language); err != nil {
		return "", utils.NewOCRError(
			fmt.Sprintf("failed to set OCR language %q", e.config.Language), err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", utils.NewOCRError("failed to set page segmentation mode", err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", utils.NewOCRError(fmt.Sprintf("failed to set image: %s", imagePath), err)
	}

	text, err := client.Text()
	if err != nil {
		return "", utils.NewOCRError(fmt.Sprintf("OCR failed for %s", imagePath), err)
	}

	e.logger.Debug("OCR recognized %d characters from %s", len(text), imagePath)
	return text, nil
}

// Version returns the installed Tesseract version
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
