package extractor

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/types"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// ExportChunks processes pages 1..maxPages in fixed-size windows, writing
// one text file per window and a combined file for the whole document.
// The combined file is written even when every window came back empty; in
// that case the returned text is the failure indicator string.
func (e *Extractor) ExportChunks(ctx context.Context, path string, maxPages int) (*types.ExportResult, error) {
	if err := e.acquire(); err != nil {
		return nil, err
	}
	defer e.release()

	if maxPages < 1 {
		return nil, utils.NewValidationError("max pages must be at least 1", nil)
	}

	startTime := time.Now()
	baseName := utils.BaseNameWithoutExt(path)

	result := &types.ExportResult{PagesTotal: maxPages}
	var chunkTexts []string
	chunkNumber := 1

	for startPage := 1; startPage <= maxPages; startPage += e.config.ChunkSize {
		window := e.config.ChunkSize
		if remaining := maxPages - startPage + 1; window > remaining {
			window = remaining
		}

		e.logger.ProgressAlways("📖", "Processing pages %d to %d", startPage, startPage+window-1)

		chunkText, err := e.extractText(ctx, path, types.ExtractOptions{
			MaxPages:  window,
			StartPage: startPage,
		})
		if err != nil {
			return nil, err
		}

		chunkPath := e.config.ChunkFilePath(baseName, chunkNumber)
		if err := e.writeTextFile(chunkPath, chunkText); err != nil {
			return nil, err
		}

		e.logger.Progress("💾", "Saved chunk %d text to: %s", chunkNumber, chunkPath)
		chunkTexts = append(chunkTexts, chunkText)
		result.ChunkFiles = append(result.ChunkFiles, chunkPath)
		chunkNumber++
	}

	combined := strings.Join(chunkTexts, constants.PageSeparator)

	combinedPath := e.config.CombinedFilePath(baseName)
	if err := e.writeTextFile(combinedPath, combined); err != nil {
		return nil, err
	}
	result.CombinedFile = combinedPath

	e.logger.ProgressAlways("💾", "Saved combined text to: %s", combinedPath)

	if strings.TrimSpace(combined) == "" {
		e.logger.Warn("No text extracted from any chunk")
		result.Text = constants.FailureIndicator
	} else {
		result.Text = combined
	}

	result.ProcessTime = time.Since(startTime).Milliseconds()
	return result, nil
}

// writeTextFile persists a text file, retrying transient I/O failures.
// Permission failures are final and not retried.
func (e *Extractor) writeTextFile(path, text string) error {
	return utils.WithRetry(func() error {
		if err := os.WriteFile(path, []byte(text), constants.DefaultFilePermission); err != nil {
			if os.IsPermission(err) {
				return utils.NewPermissionError("permission denied writing text file: "+path, err)
			}
			return utils.NewIOError("failed to write text file: "+path, err)
		}
		return nil
	}, constants.DefaultMaxRetries)
}
