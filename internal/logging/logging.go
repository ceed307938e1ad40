// Package logging builds the diagnostic logger used by the CLI.
package logging

import (
	"io"
	"log/slog"
	"time"
)

// New returns a logger writing text records to w at debug level when verbose
// is set. Otherwise all records are discarded.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose || w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	return slog.New(h).With("app", "logscan")
}
