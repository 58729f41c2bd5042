// Package output provides report formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bkaplan/gcprof/internal/profile"
)

// TabWriter writes GC-ratio results in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"Transcript_ID",
			"Chromosome",
			"CDS_GC_Ratio",
			"UTR_5_GC_Ratio",
			"UTR_3_GC_Ratio",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single transcript row.
func (tw *TabWriter) Write(r *profile.Result) error {
	values := []string{
		r.TranscriptID,
		r.Chrom,
		formatRatio(r.CDS),
		formatRatio(r.UTR5),
		formatRatio(r.UTR3),
	}
	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// formatRatio renders a ratio to 2 decimal places, or "-" when absent.
func formatRatio(r profile.Ratio) string {
	if !r.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f", r.Value)
}
