package extract

import (
	"strings"

	"shiksha/internal/domain"
)

// BatchFile tracks one document in a multi-file extraction run.
type BatchFile struct {
	Name      string            `json:"name"`
	Status    domain.FileStatus `json:"status"`
	Text      string            `json:"text,omitempty"`
	PageCount int               `json:"page_count,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Batch processes documents strictly one at a time to bound peak memory.
// Completed files can be removed, and the combined text is recomputed from
// the remaining successful files in their original order.
type Batch struct {
	files     []BatchFile
	extractFn func(name, contentType string, data []byte) (*Result, error)
}

// NewBatch starts an empty multi-file run using the batch size limit.
func (e *Extractor) NewBatch() *Batch {
	b := &Batch{}
	b.extractFn = func(name, contentType string, data []byte) (*Result, error) {
		return e.extract(name, contentType, data, e.maxBatch)
	}
	return b
}

// Add processes one document synchronously and records its outcome. The
// returned entry reflects the final status.
func (b *Batch) Add(name, contentType string, data []byte) BatchFile {
	entry := BatchFile{Name: name, Status: domain.FileStatusProcessing}
	b.files = append(b.files, entry)
	idx := len(b.files) - 1

	res, err := b.extractFn(name, contentType, data)
	if err != nil {
		b.files[idx].Status = domain.FileStatusError
		b.files[idx].Error = err.Error()
	} else {
		b.files[idx].Status = domain.FileStatusSuccess
		b.files[idx].Text = res.Text
		b.files[idx].PageCount = res.PageCount
	}
	return b.files[idx]
}

// Remove drops the first file with the given name. It reports whether
// anything was removed.
func (b *Batch) Remove(name string) bool {
	for i, f := range b.files {
		if f.Name == name {
			b.files = append(b.files[:i], b.files[i+1:]...)
			return true
		}
	}
	return false
}

// Files returns a copy of the current entries in original order.
func (b *Batch) Files() []BatchFile {
	out := make([]BatchFile, len(b.files))
	copy(out, b.files)
	return out
}

// CombinedText joins the texts of the successful files, in original relative
// order, separated by blank lines.
func (b *Batch) CombinedText() string {
	var parts []string
	for _, f := range b.files {
		if f.Status == domain.FileStatusSuccess && f.Text != "" {
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
