package constants

import "time"

// Application constants
const (
	AppName = "pdf-to-text"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
	// Use cmd.GetVersionInfo() to get the current version at runtime
)

// File processing constants
const (
	// Default file permissions
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Retry settings for transient file I/O
	DefaultMaxRetries = 3
)

// Batch and chunk processing constants
const (
	// BatchSize is the maximum number of pages rasterized per call.
	BatchSize = 10

	// ChunkSize is the number of pages persisted per chunk file.
	ChunkSize = 10

	// ProbeTimeout bounds the single-page discovery probe.
	ProbeTimeout = 10 * time.Second

	// BatchTimeout bounds rasterization of one page batch.
	BatchTimeout = 30 * time.Second
)

// Rasterization and OCR constants
const (
	// Image rendering settings
	DefaultImageDPI    = 200
	DefaultImageFormat = "png"

	// DefaultLanguage is the Tesseract language code for recognition.
	DefaultLanguage = "ara"

	// Filename patterns inside the output directory
	TempPageImagePattern = "temp_page_%d.png"
	ChunkFilePattern     = "%s_text_chunk_%d.txt"
	CombinedFileSuffix   = "_output.txt"

	// PageSeparator joins per-page and per-chunk texts.
	PageSeparator = "\n\n"

	// FailureIndicator is returned by the chunked export when no chunk
	// produced any text.
	FailureIndicator = "Failed to extract text from document."
)

// File size limits (in bytes)
const (
	MaxFileSize       = 500 * 1024 * 1024 // 500MB
	WarnFileSizeLimit = 50 * 1024 * 1024  // 50MB
)

// Error messages
const (
	ErrBusyExtractor = "please wait for the previous extraction to finish"
	ErrRasterTimeout = "PDF processing timed out, the file might be too large or corrupt"
	ErrNoPagesFound  = "could not read the PDF file"
)
