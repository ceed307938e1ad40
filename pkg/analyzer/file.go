package analyzer

import (
	"context"
	"fmt"
	"os"

	"github.com/ccollicutt/logscan/pkg/parser"
)

// NotFoundError is returned by AnalyzeFile when the path cannot be found.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// AnalyzeFile checks that path exists and then analyzes its lines.
// Any stat failure is reported as a *NotFoundError. Failures after that,
// including the file vanishing before it is opened, are returned as read errors.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	source := parser.NewFileSource(path)
	defer source.Close()

	result, err := a.Analyze(ctx, source)
	if err != nil {
		return nil, err
	}
	result.Source = path
	return result, nil
}
