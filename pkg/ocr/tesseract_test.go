package ocr

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/payrawsa/pdf-to-text/pkg/config"
	"github.com/payrawsa/pdf-to-text/pkg/logger"
)

// createTestImage writes a small white image with a black block to a temp
// file. Real recognition needs real scans; these are wiring tests.
func createTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	for y := 15; y < 30; y++ {
		for x := 10; x < 60; x++ {
			img.Set(x, y, color.Black)
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "ocr-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return tmpFile.Name()
}

func testEngine(language string) *TesseractEngine {
	cfg := &config.Config{Language: language}
	return NewTesseractEngine(cfg, logger.NewLogger("error", false))
}

func skipIfTesseractMissing(t *testing.T, err error) {
	t.Helper()
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") ||
		strings.Contains(msg, "language") {
		t.Skip("Tesseract not available")
	}
}

func TestEngineMetadata(t *testing.T) {
	engine := testEngine("ara")
	if engine.Name() != "tesseract" {
		t.Errorf("unexpected engine name: %s", engine.Name())
	}
	if !strings.Contains(engine.GetDescription(), "ara") {
		t.Errorf("description should mention the language: %s", engine.GetDescription())
	}
}

func TestExtractTextFromImage(t *testing.T) {
	engine := testEngine("eng")
	imgPath := createTestImage(t)

	_, err := engine.ExtractTextFromImage(context.Background(), imgPath)
	if err != nil {
		// Tesseract might not be installed - skip test
		skipIfTesseractMissing(t, err)
		t.Fatalf("ExtractTextFromImage failed: %v", err)
	}
}

func TestExtractTextFromImageMissingFile(t *testing.T) {
	engine := testEngine("eng")

	_, err := engine.ExtractTextFromImage(context.Background(), "/nonexistent/page.png")
	if err == nil {
		t.Error("expected error for missing image file")
	}
}

func TestExtractTextFromImageCancelledContext(t *testing.T) {
	engine := testEngine("eng")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ExtractTextFromImage(ctx, createTestImage(t))
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
