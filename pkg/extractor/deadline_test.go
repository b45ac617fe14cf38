package extractor

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

func TestRunWithDeadlineSuccess(t *testing.T) {
	want := []image.Image{image.NewRGBA(image.Rect(0, 0, 1, 1))}
	got, err := runWithDeadline(context.Background(), time.Second, func(ctx context.Context) ([]image.Image, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("runWithDeadline failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 image, got %d", len(got))
	}
}

func TestRunWithDeadlinePropagatesError(t *testing.T) {
	wantErr := errors.New("render broke")
	_, err := runWithDeadline(context.Background(), time.Second, func(ctx context.Context) ([]image.Image, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped render error, got %v", err)
	}
}

func TestRunWithDeadlineTimeout(t *testing.T) {
	start := time.Now()
	_, err := runWithDeadline(context.Background(), 20*time.Millisecond, func(ctx context.Context) ([]image.Image, error) {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return nil, ctx.Err()
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	appErr, ok := err.(*utils.AppError)
	if !ok {
		t.Fatalf("expected *utils.AppError, got %T", err)
	}
	if appErr.Type != utils.ErrorTypeTimeout {
		t.Errorf("expected timeout error, got %s", appErr.Type)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("deadline not enforced, took %v", elapsed)
	}
}

func TestRunWithDeadlineRespectsParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runWithDeadline(ctx, time.Minute, func(ctx context.Context) ([]image.Image, error) {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return nil, ctx.Err()
	})
	if err == nil {
		t.Fatal("expected error for cancelled parent context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in the chain, got %v", err)
	}
	// Caller cancellation must not be reported as a rasterization timeout
	if strings.Contains(err.Error(), constants.ErrRasterTimeout) {
		t.Errorf("cancellation surfaced with the timeout message: %v", err)
	}
}
