package utils

import (
	"fmt"
	"os"
	"sync"

	"github.com/payrawsa/pdf-to-text/pkg/logger"
)

// TempImageTracker tracks rendered page images for guaranteed cleanup.
// Every image written to disk is registered on creation; Cleanup removes
// whatever is still registered, so images are deleted on every exit path.
// Individual deletion failures are logged and never abort the job.
type TempImageTracker struct {
	paths  []string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewTempImageTracker creates a tracker for one extraction call
func NewTempImageTracker(log *logger.Logger) *TempImageTracker {
	return &TempImageTracker{logger: log}
}

// Register records a temp image path for later cleanup
func (t *TempImageTracker) Register(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths = append(t.paths, path)
}

// Remove deletes one registered image immediately and drops it from the
// tracker. A deletion failure is logged and the path stays registered so
// the final Cleanup retries it.
func (t *TempImageTracker) Remove(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn("Failed to remove temporary image %s: %v", path, err)
		return
	}
	t.logger.Debug("Removed temporary image: %s", path)
	t.drop(path)
}

// drop removes a path from the registry. Caller holds the lock.
func (t *TempImageTracker) drop(path string) {
	for i, p := range t.paths {
		if p == path {
			t.paths = append(t.paths[:i], t.paths[i+1:]...)
			return
		}
	}
}

// Pending returns the number of images still registered
func (t *TempImageTracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.paths)
}

// Cleanup removes all still-registered images. Per-file failures are
// collected so one failed deletion does not block the rest.
func (t *TempImageTracker) Cleanup() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for _, path := range t.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove temp image %s: %w", path, err))
			t.logger.Warn("Failed to remove temporary image: %s, error: %v", path, err)
			continue
		}
		t.logger.Debug("Removed temporary image: %s", path)
	}
	t.paths = t.paths[:0]

	if len(errs) > 0 {
		return fmt.Errorf("cleanup failed with %d errors: %v", len(errs), errs)
	}
	return nil
}

// WithCleanup executes a function and always sweeps remaining images
// afterwards. The function's error wins; cleanup failures are only logged.
func (t *TempImageTracker) WithCleanup(fn func() error) error {
	defer func() {
		if err := t.Cleanup(); err != nil {
			t.logger.Error("Temporary image cleanup failed: %v", err)
		}
	}()
	return fn()
}
