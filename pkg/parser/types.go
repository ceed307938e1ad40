// Package parser provides log file reading functionality.
package parser

// LogLine is a single line read from a log file.
type LogLine struct {
	// Content is the line text with leading and trailing whitespace removed.
	Content string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
