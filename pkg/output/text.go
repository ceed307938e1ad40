package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. Detail sections are only written
// when they have entries.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Analysis Result for %s:\n", report.Path)
	fmt.Fprintf(bw, "Total Errors: %d\n", report.Summary.TotalErrors)
	fmt.Fprintf(bw, "Total Warnings: %d\n", report.Summary.TotalWarnings)

	if !f.opts.Quiet && report.HasFindings() {
		if report.Summary.TotalErrors > 0 {
			writeSection(bw, "Error Details:", report.ErrorDetails)
		}
		if report.Summary.TotalWarnings > 0 {
			writeSection(bw, "Warning Details:", report.WarningDetails)
		}
	}

	return bw.Flush()
}

func writeSection(w io.Writer, title string, lines []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
