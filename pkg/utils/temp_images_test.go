package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/payrawsa/pdf-to-text/pkg/logger"
)

func newTestTracker(t *testing.T) *TempImageTracker {
	t.Helper()
	return NewTempImageTracker(logger.NewLogger("error", false))
}

func createTempImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("failed to create temp image: %v", err)
	}
	return path
}

func TestTrackerRemoveDeletesAndDrops(t *testing.T) {
	dir := t.TempDir()
	tracker := newTestTracker(t)

	path := createTempImage(t, dir, "temp_page_1.png")
	tracker.Register(path)
	if tracker.Pending() != 1 {
		t.Fatalf("expected 1 pending image, got %d", tracker.Pending())
	}

	tracker.Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected image deleted")
	}
	if tracker.Pending() != 0 {
		t.Errorf("expected 0 pending images, got %d", tracker.Pending())
	}
}

func TestTrackerRemoveMissingFileIsDropped(t *testing.T) {
	tracker := newTestTracker(t)
	path := filepath.Join(t.TempDir(), "temp_page_9.png")

	tracker.Register(path)
	tracker.Remove(path)
	if tracker.Pending() != 0 {
		t.Errorf("already-deleted image should be dropped, %d pending", tracker.Pending())
	}
}

func TestTrackerCleanupSweepsRemaining(t *testing.T) {
	dir := t.TempDir()
	tracker := newTestTracker(t)

	paths := []string{
		createTempImage(t, dir, "temp_page_1.png"),
		createTempImage(t, dir, "temp_page_2.png"),
		createTempImage(t, dir, "temp_page_3.png"),
	}
	for _, p := range paths {
		tracker.Register(p)
	}

	if err := tracker.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("expected %s deleted", p)
		}
	}
	if tracker.Pending() != 0 {
		t.Errorf("expected empty tracker, %d pending", tracker.Pending())
	}
}

func TestTrackerWithCleanupSweepsOnError(t *testing.T) {
	dir := t.TempDir()
	tracker := newTestTracker(t)
	path := createTempImage(t, dir, "temp_page_1.png")
	tracker.Register(path)

	wantErr := errors.New("batch failed")
	err := tracker.WithCleanup(func() error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the function's error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected image swept on the error path")
	}
}

func TestTrackerWithCleanupSweepsOnSuccess(t *testing.T) {
	dir := t.TempDir()
	tracker := newTestTracker(t)
	path := createTempImage(t, dir, "temp_page_1.png")
	tracker.Register(path)

	if err := tracker.WithCleanup(func() error { return nil }); err != nil {
		t.Fatalf("WithCleanup failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected image swept after success")
	}
}
