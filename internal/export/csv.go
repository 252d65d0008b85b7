// Package export renders generated content as downloadable CSV and XLSX
// files for printing and offline review.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"shiksha/internal/section"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// assessmentColumns defines the CSV header row for assessment exports.
var assessmentColumns = []string{
	"Topic",
	"Section",
	"Question #",
	"Question",
	"Option A",
	"Option B",
	"Option C",
	"Option D",
	"Answer",
	"Explanation",
}

// worksheetColumns defines the CSV header row for worksheet exports.
var worksheetColumns = []string{
	"Topic",
	"Worksheet",
	"Instructions",
	"Activity #",
	"Activity Type",
	"Question",
	"Answer",
}

// Writer wraps csv.Writer for exporting parsed content as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteAssessment writes the header row followed by one row per question.
func (w *Writer) WriteAssessment(topicName string, sections []section.Section) error {
	if err := w.csv.Write(assessmentColumns); err != nil {
		return err
	}
	for _, sec := range sections {
		for _, q := range sec.Questions {
			if err := w.csv.Write(questionToRow(topicName, sec.Title, q)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteWorksheets writes the header row followed by one row per activity.
// A worksheet with no activities still gets a single row so its
// instructions are not lost.
func (w *Writer) WriteWorksheets(topicName string, sheets []section.Worksheet) error {
	if err := w.csv.Write(worksheetColumns); err != nil {
		return err
	}
	for _, sheet := range sheets {
		if len(sheet.Activities) == 0 {
			row := []string{topicName, sheet.Title, sheet.Instructions, "", "", "", ""}
			if err := w.csv.Write(row); err != nil {
				return err
			}
			continue
		}
		for i, act := range sheet.Activities {
			row := []string{
				topicName,
				sheet.Title,
				sheet.Instructions,
				strconv.Itoa(i + 1),
				act.Type,
				act.Question,
				act.Answer,
			}
			if err := w.csv.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// questionToRow converts a single question to a CSV row. Options beyond the
// first four are dropped; missing options leave their columns empty.
func questionToRow(topicName, sectionTitle string, q section.Question) []string {
	row := make([]string, len(assessmentColumns))
	row[0] = topicName
	row[1] = sectionTitle
	row[2] = strconv.Itoa(q.ID)
	row[3] = q.Text
	for i, opt := range q.Options {
		if i >= 4 {
			break
		}
		row[4+i] = opt.Text
	}
	row[8] = q.Answer
	row[9] = q.Explanation
	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a topic name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_topic_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(topicName, ext string) string {
	sanitized := SanitizeFilename(topicName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
