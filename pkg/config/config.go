package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
)

// Default values
const (
	DefaultLogLevel      = "info"
	DefaultEnableVerbose = false
	DefaultKeepImages    = false
	DefaultOutputDir     = "output"
)

// Config holds application configuration
type Config struct {
	// Persisted settings (see file.go)
	OutputDir    string `json:"output_dir"`
	Language     string `json:"language"`
	TessdataPath string `json:"tessdata_path"`

	// Runtime settings (not persisted to file)
	DPI           int           `json:"-"`
	BatchSize     int           `json:"-"`
	ChunkSize     int           `json:"-"`
	ProbeTimeout  time.Duration `json:"-"`
	BatchTimeout  time.Duration `json:"-"`
	KeepImages    bool          `json:"-"`
	LogLevel      string        `json:"-"`
	EnableVerbose bool          `json:"-"`
}

// DefaultConfig returns the configuration by loading from file or creating default
func DefaultConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		// If loading fails, fall back to basic defaults
		fmt.Printf("Warning: Failed to load config file, using basic defaults: %v\n", err)
		return newBaseConfig()
	}
	return config
}

// newBaseConfig builds a Config with all defaults applied
func newBaseConfig() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir,
		Language:      constants.DefaultLanguage,
		TessdataPath:  "",
		DPI:           constants.DefaultImageDPI,
		BatchSize:     constants.BatchSize,
		ChunkSize:     constants.ChunkSize,
		ProbeTimeout:  constants.ProbeTimeout,
		BatchTimeout:  constants.BatchTimeout,
		KeepImages:    DefaultKeepImages,
		LogLevel:      DefaultLogLevel,
		EnableVerbose: DefaultEnableVerbose,
	}
}

// LoadConfigWithEnvOverrides loads config from file and applies environment variable overrides
func LoadConfigWithEnvOverrides() *Config {
	config := DefaultConfig()

	if value := os.Getenv("PDF_TEXT_OUTPUT_DIR"); value != "" {
		config.OutputDir = value
	}
	if value := os.Getenv("PDF_TEXT_LANGUAGE"); value != "" {
		config.Language = value
	}
	if value := os.Getenv("PDF_TEXT_TESSDATA"); value != "" {
		config.TessdataPath = value
	}
	if value := os.Getenv("PDF_TEXT_DPI"); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			config.DPI = intVal
		}
	}
	if value := os.Getenv("PDF_TEXT_KEEP_IMAGES"); value != "" {
		config.KeepImages = value == "true" || value == "1" || value == "yes"
	}
	if value := os.Getenv("PDF_TEXT_BATCH_TIMEOUT_SECONDS"); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			config.BatchTimeout = time.Duration(intVal) * time.Second
		}
	}
	if value := os.Getenv("PDF_TEXT_LOG_LEVEL"); value != "" {
		config.LogLevel = value
	}
	if value := os.Getenv("PDF_TEXT_VERBOSE"); value != "" {
		config.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}

	return config
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validator := NewConfigValidator()
	return validator.Validate(c)
}

// TempImagePath returns the path of the rendered image for a page number
func (c *Config) TempImagePath(pageNum int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf(constants.TempPageImagePattern, pageNum))
}

// ChunkFilePath returns the chunk text file path for a source document
func (c *Config) ChunkFilePath(baseName string, chunkNumber int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf(constants.ChunkFilePattern, baseName, chunkNumber))
}

// CombinedFilePath returns the combined output file path for a source document
func (c *Config) CombinedFilePath(baseName string) string {
	return filepath.Join(c.OutputDir, baseName+constants.CombinedFileSuffix)
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Language: %s, OutputDir: %s, DPI: %d, Verbose: %v}",
		c.Language, c.OutputDir, c.DPI, c.EnableVerbose)
}
