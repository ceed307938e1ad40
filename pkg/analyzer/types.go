// Package analyzer classifies log lines into error and warning categories.
package analyzer

import (
	"fmt"
	"time"
)

// Category is the classification assigned to a log line.
type Category string

const (
	// CategoryError marks lines containing the error marker.
	CategoryError Category = "error"

	// CategoryWarning marks lines containing the warning marker.
	CategoryWarning Category = "warning"
)

// Markers matched against trimmed line content. Matching is case-sensitive.
const (
	ErrorMarker   = "ERROR"
	WarningMarker = "WARNING"
)

// Rule pairs a substring marker with the category it assigns.
type Rule struct {
	Marker   string
	Category Category
}

// DefaultRules returns the classification rules in match order.
// A line containing both markers is an error.
func DefaultRules() []Rule {
	return []Rule{
		{Marker: ErrorMarker, Category: CategoryError},
		{Marker: WarningMarker, Category: CategoryWarning},
	}
}

// Match is a classified log line.
type Match struct {
	// LineNum is the 1-based line number in the source file.
	LineNum int `json:"line" yaml:"line"`

	// Content is the trimmed line text.
	Content string `json:"content" yaml:"content"`
}

// String formats the match as it appears in the report details.
func (m Match) String() string {
	return fmt.Sprintf("Line %d: %s", m.LineNum, m.Content)
}

// Result is the outcome of one pass over a log source.
type Result struct {
	// Source is the file path that was analyzed.
	Source string

	// ErrorCount is the number of error lines.
	ErrorCount int

	// WarningCount is the number of warning lines that were not errors.
	WarningCount int

	// Errors lists error lines in file order.
	Errors []Match

	// Warnings lists warning lines in file order.
	Warnings []Match

	// LinesProcessed is the total number of lines read, classified or not.
	LinesProcessed int

	// StartTime is when analysis began.
	StartTime time.Time

	// EndTime is when analysis completed.
	EndTime time.Time
}

// HasFindings returns true if any error or warning lines were found.
func (r *Result) HasFindings() bool {
	return r.ErrorCount > 0 || r.WarningCount > 0
}

// ErrorLines returns the error matches formatted as report lines.
func (r *Result) ErrorLines() []string {
	return formatMatches(r.Errors)
}

// WarningLines returns the warning matches formatted as report lines.
func (r *Result) WarningLines() []string {
	return formatMatches(r.Warnings)
}

func formatMatches(matches []Match) []string {
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = m.String()
	}
	return lines
}
