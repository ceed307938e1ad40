// Package output provides formatting and output generation for analysis results.
package output

import (
	"time"

	"github.com/ccollicutt/logscan/pkg/analyzer"
)

// Report is the complete analysis output for one log file.
type Report struct {
	// Path is the log file path as given on the command line.
	Path string `json:"path" yaml:"path"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary" yaml:"summary"`

	// ErrorDetails lists error lines formatted as "Line <n>: <content>".
	ErrorDetails []string `json:"error_details" yaml:"error_details"`

	// WarningDetails lists warning lines formatted as "Line <n>: <content>".
	WarningDetails []string `json:"warning_details" yaml:"warning_details"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate counts.
type Summary struct {
	TotalErrors    int `json:"total_errors" yaml:"total_errors"`
	TotalWarnings  int `json:"total_warnings" yaml:"total_warnings"`
	LinesProcessed int `json:"lines_processed" yaml:"lines_processed"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates a Report from an analysis result.
func NewReport(result *analyzer.Result, path string) *Report {
	return &Report{
		Path: path,
		Summary: Summary{
			TotalErrors:    result.ErrorCount,
			TotalWarnings:  result.WarningCount,
			LinesProcessed: result.LinesProcessed,
		},
		ErrorDetails:   result.ErrorLines(),
		WarningDetails: result.WarningLines(),
		Metadata: Metadata{
			AnalyzedAt: result.EndTime,
			Duration:   result.EndTime.Sub(result.StartTime),
		},
	}
}

// HasFindings returns true if any errors or warnings were found.
func (r *Report) HasFindings() bool {
	return r.Summary.TotalErrors > 0 || r.Summary.TotalWarnings > 0
}
