package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"medreportz/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (7 columns).
var columns = []string{
	"Test Name",
	"Value",
	"Unit",
	"Normal Range",
	"Status",
	"Highlight",
	"Confidence",
}

// Writer wraps csv.Writer for exporting lab results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 7-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteLabs converts a batch of resolved lab results to CSV rows and writes them.
func (w *Writer) WriteLabs(labs []domain.ResolvedLabResult) error {
	for i := range labs {
		row := labToRow(&labs[i])
		if err := w.csv.Write(row); err != nil {
			return err
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

// labToRow converts a single lab result to a 7-element string slice.
func labToRow(lab *domain.ResolvedLabResult) []string {
	row := make([]string, len(columns))
	row[0] = lab.TestName
	row[1] = strconv.FormatFloat(lab.Value, 'f', -1, 64)
	row[2] = lab.Unit
	row[3] = lab.NormalRange
	row[4] = string(lab.Status)
	row[5] = string(lab.Highlight)
	row[6] = strconv.FormatFloat(lab.Confidence, 'f', 2, 64)
	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report file name for use in Content-Disposition.
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
// Format: {sanitized_report_name}_{YYYY-MM-DD}.csv
func BuildFilename(reportName string) string {
	sanitized := SanitizeFilename(reportName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
