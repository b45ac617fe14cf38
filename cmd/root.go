package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/payrawsa/pdf-to-text/pkg/config"
	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/extractor"
	"github.com/payrawsa/pdf-to-text/pkg/interfaces"
	"github.com/payrawsa/pdf-to-text/pkg/logger"
	"github.com/payrawsa/pdf-to-text/pkg/ocr"
	"github.com/payrawsa/pdf-to-text/pkg/pdf"
	"github.com/payrawsa/pdf-to-text/pkg/types"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

var (
	maxPages    int
	startPage   int
	keepImages  bool
	language    string
	outputDir   string
	textOnly    bool
	verbose     bool
	showVersion bool
)

// AppHandler encapsulates application main processing logic
type AppHandler struct {
	config    *config.Config
	logger    *logger.Logger
	extractor interfaces.PageExtractor
}

// NewAppHandler creates an application handler
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// Run is the main entry point for an extraction job
func (h *AppHandler) Run(pdfPath string, pages int) error {
	if err := h.initialize(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "error resolving file path")
	}

	// The extractor core assumes the output directory exists
	if err := utils.EnsureDir(h.config.OutputDir); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to create output directory")
	}

	if err := h.checkInputFile(absPath); err != nil {
		return err
	}

	ctx := context.Background()

	if textOnly {
		text, err := h.extractor.ExtractText(ctx, absPath, types.ExtractOptions{
			MaxPages:   pages,
			StartPage:  startPage,
			KeepImages: keepImages,
		})
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	result, err := h.extractor.ExportChunks(ctx, absPath, pages)
	if err != nil {
		return err
	}

	h.displayResults(result)
	return nil
}

// initialize initializes application components
func (h *AppHandler) initialize() error {
	h.config = config.LoadConfigWithEnvOverrides()
	h.applyCommandLineOverrides()

	if err := h.config.Validate(); err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "configuration validation failed")
	}

	h.logger = logger.NewLogger(h.config.LogLevel, h.config.EnableVerbose)

	raster := pdf.NewFitzRasterizer(h.logger)
	engine := ocr.NewTesseractEngine(h.config, h.logger)
	h.extractor = extractor.New(h.config, h.logger, raster, engine)

	return nil
}

// applyCommandLineOverrides applies command line parameter overrides
func (h *AppHandler) applyCommandLineOverrides() {
	if language != "" {
		h.config.Language = language
	}
	if outputDir != "" {
		h.config.OutputDir = outputDir
	}
	if keepImages {
		h.config.KeepImages = true
	}
	if verbose {
		h.config.EnableVerbose = true
	}
}

// checkInputFile inspects the input file and rejects oversized documents
func (h *AppHandler) checkInputFile(absPath string) error {
	info, err := utils.GetFileInfo(absPath)
	if err != nil {
		h.logger.Debug("Could not read file info: %v", err)
		return nil
	}

	h.logger.Info("Input file: %s", absPath)
	h.logger.Info("  Size: %d bytes", info.Size)
	h.logger.Info("  MIME type: %s", info.MimeType)
	h.logger.Info("  MD5 hash: %s", info.MD5Hash)

	if info.Size > constants.MaxFileSize {
		return utils.NewValidationError(
			fmt.Sprintf("file too large: %d bytes (limit %d)", info.Size, constants.MaxFileSize), nil)
	}
	if info.Size > constants.WarnFileSizeLimit {
		h.logger.Warn("Large file (%d bytes), processing may be slow", info.Size)
	}
	if !utils.IsPDFFile(info) {
		h.logger.Warn("Input does not look like a PDF (extension: %s, MIME: %s)",
			info.Extension, info.MimeType)
	}
	return nil
}

// displayResults displays processing results
func (h *AppHandler) displayResults(result *types.ExportResult) {
	fmt.Printf("✅ Text extracted successfully\n")
	fmt.Printf("📊 Chunk files written: %d\n", len(result.ChunkFiles))
	fmt.Printf("📄 Combined output: %s\n", result.CombinedFile)
	fmt.Printf("⏱️  Processing time: %dms\n", result.ProcessTime)
	fmt.Printf("📝 Extracted text length: %d characters\n", len(result.Text))
	fmt.Println("All done. Thank you for using pdf-to-text.")
}

// promptForJob interactively asks for the PDF path and maximum page count
func promptForJob() (string, int, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter the path to the PDF file: ")
	pathInput, err := reader.ReadString('\n')
	if err != nil {
		return "", 0, fmt.Errorf("failed to read input: %w", err)
	}
	pdfPath := strings.TrimSpace(pathInput)
	if pdfPath == "" {
		return "", 0, fmt.Errorf("PDF path cannot be empty")
	}

	fmt.Print("Enter the maximum number of pages to process: ")
	pagesInput, err := reader.ReadString('\n')
	if err != nil {
		return "", 0, fmt.Errorf("failed to read input: %w", err)
	}
	pages, err := strconv.Atoi(strings.TrimSpace(pagesInput))
	if err != nil || pages < 1 {
		return "", 0, fmt.Errorf("invalid page count: %s", strings.TrimSpace(pagesInput))
	}

	return pdfPath, pages, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdf-to-text [pdf_file]",
	Short: "Extract text from scanned PDF documents using OCR",
	Long: `A CLI tool that extracts text from scanned (image-based) PDF documents.

Pages are rasterized in batches of 10 and fed through Tesseract OCR; the
recognized text is written as one file per 10-page chunk plus a single
combined output file. The default OCR language is Arabic ("ara").

The output directory holds the rendered page images (temp_page_<N>.png,
deleted after recognition unless --keep-images is set), the per-chunk text
files (<name>_text_chunk_<n>.txt) and the combined file (<name>_output.txt).

Requirements:
- Tesseract with language data for the configured language
  (e.g. apt-get install tesseract-ocr tesseract-ocr-ara)
- MuPDF is bundled via go-fitz; no external PDF tooling is needed

Examples:
  pdf-to-text                                  # Prompt for path and page count
  pdf-to-text scan.pdf --max-pages 25          # Chunked export of pages 1-25
  pdf-to-text scan.pdf --max-pages 10 --lang eng
  pdf-to-text scan.pdf --max-pages 5 --text    # Print text, no chunk files
  pdf-to-text scan.pdf --text                  # Whole document, no page limit
  pdf-to-text scan.pdf --max-pages 25 --keep-images -v`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Printf("%s %s\n", cmd.Root().Name(), version)
			return
		}

		var pdfPath string
		pages := maxPages

		if len(args) == 0 {
			var err error
			pdfPath, pages, err = promptForJob()
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
		} else {
			pdfPath = args[0]
			if pages < 1 && !textOnly {
				log.Fatalf("Error: --max-pages is required for chunked export (or use --text)")
			}
		}

		handler := NewAppHandler()
		if err := handler.Run(pdfPath, pages); err != nil {
			if appErr, ok := err.(*utils.AppError); ok {
				log.Fatalf("Error (%s): %s", appErr.Type, appErr.Message)
			}
			log.Fatalf("Error: %v", err)
		}
	},
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&maxPages, "max-pages", 0,
		"Maximum number of pages to process (required unless --text)")
	rootCmd.Flags().IntVar(&startPage, "start-page", 1,
		"1-indexed page to start from (only with --text)")
	rootCmd.Flags().BoolVar(&keepImages, "keep-images", false,
		"Keep the rendered page images instead of deleting them after OCR")
	rootCmd.Flags().StringVar(&language, "lang", "",
		"Tesseract language code (default: ara, or the configured value)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"Directory for images, chunk files and combined output (default: output)")
	rootCmd.Flags().BoolVar(&textOnly, "text", false,
		"Print the extracted text instead of writing chunk files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output to show progress information")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"Show version information")
}
