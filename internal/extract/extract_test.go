package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/domain"
)

// textlessPDF builds a minimal valid single-page PDF with no content stream,
// the shape a scanned image produces after OCR-less digitization.
func textlessPDF() []byte {
	var buf bytes.Buffer
	var offsets []int
	buf.WriteString("%PDF-1.4\n")
	add := func(obj string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}
	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	add("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")
	xref := buf.Len()
	buf.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestExtract_RejectsWrongContentType(t *testing.T) {
	e := New(Config{})

	_, err := e.Extract("notes.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("x"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
}

func TestExtract_RejectsOversizedFile(t *testing.T) {
	e := New(Config{MaxFileSizeMB: 1})

	big := make([]byte, 1024*1024+1)
	_, err := e.Extract("big.pdf", domain.PDFContentType, big)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
	assert.Contains(t, err.Error(), "1MB")
}

func TestExtract_RejectsNonPDFBytes(t *testing.T) {
	e := New(Config{})

	_, err := e.Extract("fake.pdf", domain.PDFContentType, []byte("this is not a pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake.pdf")
}

func TestExtract_TextlessPageIsNoTextLayerError(t *testing.T) {
	e := New(Config{})

	_, err := e.Extract("scan.pdf", domain.PDFContentType, textlessPDF())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTextLayer))
	assert.Contains(t, err.Error(), "scan.pdf")
	assert.Contains(t, err.Error(), "scanned image")
}

func TestNormalize(t *testing.T) {
	in := "  First   line\t here  \n\n\n\n Second line \nThird\n\n\nFourth"

	got := Normalize(in)

	assert.Equal(t, "First line here\n\nSecond line\nThird\n\nFourth", got)
}

func TestNormalize_AllWhitespaceIsEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(" \n \t \n\n "))
}

func newStubBatch(results map[string]string) *Batch {
	b := &Batch{}
	b.extractFn = func(name, _ string, _ []byte) (*Result, error) {
		text, ok := results[name]
		if !ok {
			return nil, errors.New("decode failed")
		}
		return &Result{FileName: name, Text: text, PageCount: 1}, nil
	}
	return b
}

func TestBatch_SequentialStatusAndCombinedText(t *testing.T) {
	b := newStubBatch(map[string]string{
		"a.pdf": "alpha text",
		"c.pdf": "gamma text",
	})

	fa := b.Add("a.pdf", domain.PDFContentType, nil)
	fb := b.Add("b.pdf", domain.PDFContentType, nil)
	fc := b.Add("c.pdf", domain.PDFContentType, nil)

	assert.Equal(t, domain.FileStatusSuccess, fa.Status)
	assert.Equal(t, domain.FileStatusError, fb.Status)
	assert.Equal(t, "decode failed", fb.Error)
	assert.Equal(t, domain.FileStatusSuccess, fc.Status)

	// Failed files contribute nothing to the combined text.
	assert.Equal(t, "alpha text\n\ngamma text", b.CombinedText())
}

func TestBatch_RemoveRecomputesCombinedText(t *testing.T) {
	b := newStubBatch(map[string]string{
		"a.pdf": "alpha",
		"b.pdf": "beta",
		"c.pdf": "gamma",
	})
	b.Add("a.pdf", domain.PDFContentType, nil)
	b.Add("b.pdf", domain.PDFContentType, nil)
	b.Add("c.pdf", domain.PDFContentType, nil)

	require.True(t, b.Remove("b.pdf"))
	assert.False(t, b.Remove("b.pdf"))

	// Remaining files keep their original relative order.
	assert.Equal(t, "alpha\n\ngamma", b.CombinedText())
	require.Len(t, b.Files(), 2)
	assert.Equal(t, "a.pdf", b.Files()[0].Name)
	assert.Equal(t, "c.pdf", b.Files()[1].Name)
}

func TestBatch_RealExtractorUsesBatchLimit(t *testing.T) {
	e := New(Config{MaxFileSizeMB: 1, MaxBatchFileSizeMB: 2})
	b := e.NewBatch()

	// 1.5MB passes the 2MB batch ceiling but is not a decodable PDF, so the
	// entry fails with a decode error rather than a size error.
	data := make([]byte, 3*1024*1024/2)
	entry := b.Add("mid.pdf", domain.PDFContentType, data)

	assert.Equal(t, domain.FileStatusError, entry.Status)
	assert.False(t, strings.Contains(entry.Error, "exceeds"))
}
