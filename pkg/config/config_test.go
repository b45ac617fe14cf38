package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBaseConfigDefaults(t *testing.T) {
	cfg := newBaseConfig()

	if cfg.Language != "ara" {
		t.Errorf("expected default language ara, got %q", cfg.Language)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.DPI != 200 {
		t.Errorf("expected default DPI 200, got %d", cfg.DPI)
	}
	if cfg.BatchSize != 10 || cfg.ChunkSize != 10 {
		t.Errorf("expected batch and chunk size 10, got %d/%d", cfg.BatchSize, cfg.ChunkSize)
	}
	if cfg.ProbeTimeout != 10*time.Second {
		t.Errorf("expected 10s probe timeout, got %v", cfg.ProbeTimeout)
	}
	if cfg.BatchTimeout != 30*time.Second {
		t.Errorf("expected 30s batch timeout, got %v", cfg.BatchTimeout)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PDF_TEXT_LANGUAGE", "eng")
	t.Setenv("PDF_TEXT_OUTPUT_DIR", "/tmp/scans")
	t.Setenv("PDF_TEXT_DPI", "300")
	t.Setenv("PDF_TEXT_KEEP_IMAGES", "true")
	t.Setenv("PDF_TEXT_BATCH_TIMEOUT_SECONDS", "60")
	t.Setenv("PDF_TEXT_LOG_LEVEL", "debug")

	cfg := LoadConfigWithEnvOverrides()

	if cfg.Language != "eng" {
		t.Errorf("expected language override eng, got %q", cfg.Language)
	}
	if cfg.OutputDir != "/tmp/scans" {
		t.Errorf("expected output dir override, got %q", cfg.OutputDir)
	}
	if cfg.DPI != 300 {
		t.Errorf("expected DPI override 300, got %d", cfg.DPI)
	}
	if !cfg.KeepImages {
		t.Error("expected keep-images override")
	}
	if cfg.BatchTimeout != 60*time.Second {
		t.Errorf("expected 60s batch timeout, got %v", cfg.BatchTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %q", cfg.LogLevel)
	}
}

func TestEnvOverridesIgnoreInvalidNumbers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PDF_TEXT_DPI", "not-a-number")

	cfg := LoadConfigWithEnvOverrides()
	if cfg.DPI != 200 {
		t.Errorf("expected default DPI kept for invalid override, got %d", cfg.DPI)
	}
}

func TestOutputPathHelpers(t *testing.T) {
	cfg := newBaseConfig()
	cfg.OutputDir = "out"

	if got := cfg.TempImagePath(7); got != filepath.Join("out", "temp_page_7.png") {
		t.Errorf("unexpected temp image path: %s", got)
	}
	if got := cfg.ChunkFilePath("book", 3); got != filepath.Join("out", "book_text_chunk_3.txt") {
		t.Errorf("unexpected chunk file path: %s", got)
	}
	if got := cfg.CombinedFilePath("book"); got != filepath.Join("out", "book_output.txt") {
		t.Errorf("unexpected combined file path: %s", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := newBaseConfig()
	clone := cfg.Clone()
	clone.Language = "eng"
	if cfg.Language == "eng" {
		t.Error("mutating the clone changed the original")
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// First load creates the default file
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Language != "ara" {
		t.Errorf("expected default language in new config file, got %q", cfg.Language)
	}

	if err := SetConfigValue("language", "fas"); err != nil {
		t.Fatalf("SetConfigValue failed: %v", err)
	}

	value, err := GetConfigValue("language")
	if err != nil {
		t.Fatalf("GetConfigValue failed: %v", err)
	}
	if value != "fas" {
		t.Errorf("expected persisted language fas, got %v", value)
	}

	// Runtime settings survive a reload untouched
	reloaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Language != "fas" {
		t.Errorf("expected reloaded language fas, got %q", reloaded.Language)
	}
	if reloaded.DPI != 200 || reloaded.BatchSize != 10 {
		t.Error("runtime defaults lost on reload")
	}
}

func TestConfigUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := GetConfigValue("dpi"); err == nil {
		t.Error("expected error for runtime-only key")
	}
	if err := SetConfigValue("nope", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"dpi too low", func(c *Config) { c.DPI = 50 }, true},
		{"dpi too high", func(c *Config) { c.DPI = 2400 }, true},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, true},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, true},
		{"negative batch timeout", func(c *Config) { c.BatchTimeout = -time.Second }, true},
		{"zero probe timeout", func(c *Config) { c.ProbeTimeout = 0 }, true},
		{"empty language", func(c *Config) { c.Language = "  " }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"upper-case log level", func(c *Config) { c.LogLevel = "INFO" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
