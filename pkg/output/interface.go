package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders analysis results in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, yaml).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet limits output to the summary counts.
	Quiet bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "yaml":
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json, or yaml)", name)
	}
}
