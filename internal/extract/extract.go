// Package extract pulls plain text out of uploaded PDF files, page by page,
// tolerating individual pages that yield nothing. It never reports success
// with empty text: a document with no text layer is an explicit failure so
// the caller can offer manual entry instead.
package extract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"shiksha/internal/domain"
)

// Config bounds what the extractor will accept.
type Config struct {
	MaxFileSizeMB      int64 // single-document flow
	MaxBatchFileSizeMB int64 // multi-document / chapter-planner flow
}

// Result is a successful extraction.
type Result struct {
	FileName  string `json:"file_name"`
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
}

// Extractor validates and extracts text from PDF uploads.
type Extractor struct {
	maxSingle int64
	maxBatch  int64
}

// New creates an Extractor. Zero limits fall back to 50MB single / 100MB
// batch.
func New(cfg Config) *Extractor {
	single := cfg.MaxFileSizeMB
	if single <= 0 {
		single = 50
	}
	batch := cfg.MaxBatchFileSizeMB
	if batch <= 0 {
		batch = 100
	}
	return &Extractor{
		maxSingle: single * 1024 * 1024,
		maxBatch:  batch * 1024 * 1024,
	}
}

// Extract validates and extracts a single uploaded document.
func (e *Extractor) Extract(fileName, contentType string, data []byte) (*Result, error) {
	return e.extract(fileName, contentType, data, e.maxSingle)
}

func (e *Extractor) extract(fileName, contentType string, data []byte, limit int64) (*Result, error) {
	if contentType != domain.PDFContentType {
		return nil, fmt.Errorf("%w: %s (only PDF is supported)", domain.ErrUnsupportedFileType, contentType)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %dMB limit", domain.ErrFileTooLarge, len(data), limit/(1024*1024))
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF %q: %w", fileName, err)
	}

	pageCount := reader.NumPage()
	var pages []string
	for i := 1; i <= pageCount; i++ {
		text, err := extractPage(reader, i)
		if err != nil {
			// One bad page must not abort the document.
			log.Printf("extract: %q page %d: %v", fileName, i, err)
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	normalized := Normalize(strings.Join(pages, "\n\n"))
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q has no selectable text (it may be a scanned image); paste the text manually instead", domain.ErrNoTextLayer, fileName)
	}

	return &Result{
		FileName:  fileName,
		Text:      normalized,
		PageCount: pageCount,
	}, nil
}

// extractPage pulls text from one page, trying the plain-text walk first and
// falling back to joining the raw content items. The pdf library panics on
// some malformed pages, so the whole page is wrapped in a recover.
func extractPage(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page decode panic: %v", r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}

	plain, perr := page.GetPlainText(nil)
	plain = strings.TrimSpace(plain)
	if perr == nil && plain != "" {
		return plain, nil
	}

	// Secondary best-effort pass over the raw text items.
	var b strings.Builder
	for _, item := range page.Content().Text {
		s := strings.TrimSpace(item.S)
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	if b.Len() == 0 && perr != nil {
		return "", perr
	}
	return b.String(), nil
}
