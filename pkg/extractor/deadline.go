package extractor

import (
	"context"
	"image"
	"time"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// renderResult carries a rasterization outcome across the deadline boundary.
type renderResult struct {
	images []image.Image
	err    error
}

// runWithDeadline executes one blocking rasterization call under a
// wall-clock deadline. The call runs in a single goroutine and is awaited
// with the deadline; on expiry the goroutine is abandoned (MuPDF calls
// cannot be interrupted) and a Timeout error is returned. The derived
// context lets cooperative checks inside the call stop early.
func runWithDeadline(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) ([]image.Image, error)) ([]image.Image, error) {
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan renderResult, 1)
	go func() {
		images, err := fn(taskCtx)
		done <- renderResult{images: images, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.images, nil
	case <-taskCtx.Done():
		// Parent cancellation is not a deadline expiry
		if err := ctx.Err(); err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeTimeout, "PDF processing cancelled")
		}
		return nil, utils.NewTimeoutError(constants.ErrRasterTimeout, taskCtx.Err())
	}
}
