package types

// PageRange is a contiguous inclusive 1-indexed page range.
type PageRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Width returns the number of pages covered by the range.
func (r PageRange) Width() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

// ExtractOptions controls a single extraction job.
type ExtractOptions struct {
	// MaxPages limits the number of pages processed starting from StartPage.
	// Zero means process until the end of the document.
	MaxPages int `json:"max_pages"`

	// StartPage is the 1-indexed first page to process. Zero is treated as 1.
	StartPage int `json:"start_page"`

	// KeepImages leaves the rendered page images on disk instead of deleting
	// them after OCR.
	KeepImages bool `json:"keep_images"`
}

// ExportResult holds the outcome of a chunked export.
type ExportResult struct {
	Text         string   `json:"text"`
	ChunkFiles   []string `json:"chunk_files"`
	CombinedFile string   `json:"combined_file"`
	PagesTotal   int      `json:"pages_total"`
	ProcessTime  int64    `json:"process_time_ms"`
}

// FileInfo contains basic information about an input file.
type FileInfo struct {
	MD5Hash   string `json:"md5_hash"`
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
}
