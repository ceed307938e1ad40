package parser

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, source LogSource) ([]*LogLine, error) {
	t.Helper()
	ctx := context.Background()
	var lines []*LogLine
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func TestFileSource_Next(t *testing.T) {
	logFile := writeLog(t, "First line\nSecond line\nThird line\n")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3", len(lines))
	}

	if lines[0].LineNum != 1 {
		t.Errorf("LineNum = %d, want 1", lines[0].LineNum)
	}
	if lines[0].Source != logFile {
		t.Errorf("Source = %q, want %q", lines[0].Source, logFile)
	}
	if lines[2].Content != "Third line" {
		t.Errorf("Content = %q, want %q", lines[2].Content, "Third line")
	}
}

func TestFileSource_TrimsWhitespace(t *testing.T) {
	logFile := writeLog(t, "  padded  \r\n\tERROR tabbed\t\n")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	want := []string{"padded", "ERROR tabbed"}
	if len(lines) != len(want) {
		t.Fatalf("Got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].Content != w {
			t.Errorf("lines[%d].Content = %q, want %q", i, lines[i].Content, w)
		}
	}
}

func TestFileSource_BlankLinesKeepNumbering(t *testing.T) {
	logFile := writeLog(t, "one\n\n   \nfour")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if len(lines) != 4 {
		t.Fatalf("Got %d lines, want 4", len(lines))
	}
	if lines[3].LineNum != 4 || lines[3].Content != "four" {
		t.Errorf("last line = %+v, want line 4 %q", lines[3], "four")
	}
	if lines[2].Content != "" {
		t.Errorf("whitespace-only line Content = %q, want empty", lines[2].Content)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	logFile := writeLog(t, "")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Got %d lines, want 0", len(lines))
	}
}

func TestFileSource_FileNotFound(t *testing.T) {
	source := NewFileSource("/nonexistent/file.log")
	defer source.Close()

	_, err := source.Next(context.Background())
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestFileSource_InvalidEncoding(t *testing.T) {
	logFile := writeLog(t, "fine\nbad \xff\xfe bytes\n")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("error = %v, want ErrInvalidEncoding", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the offending line", err)
	}
	if len(lines) != 1 {
		t.Errorf("Got %d lines before failure, want 1", len(lines))
	}
}

func TestFileSource_LongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024+1) + " ERROR"
	logFile := writeLog(t, "INFO a\n"+long+"\nWARNING w\n")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3", len(lines))
	}
	if lines[1].LineNum != 2 || lines[1].Content != long {
		t.Errorf("long line not read intact: line %d, %d bytes", lines[1].LineNum, len(lines[1].Content))
	}
	if lines[2].Content != "WARNING w" {
		t.Errorf("line after long line = %q, want %q", lines[2].Content, "WARNING w")
	}
}

func TestFileSource_LineEndings(t *testing.T) {
	logFile := writeLog(t, "ERROR a\rWARNING b\nWARNING c\r\nlast\r")

	source := NewFileSource(logFile)
	defer source.Close()

	lines, err := readAll(t, source)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	want := []string{"ERROR a", "WARNING b", "WARNING c", "last"}
	if len(lines) != len(want) {
		t.Fatalf("Got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].Content != w || lines[i].LineNum != i+1 {
			t.Errorf("lines[%d] = (%d, %q), want (%d, %q)", i, lines[i].LineNum, lines[i].Content, i+1, w)
		}
	}
}

func TestScanLines(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		atEOF       bool
		wantAdvance int
		wantToken   string
		wantNil     bool
	}{
		{"newline", "a\nb", false, 2, "a", false},
		{"crlf", "a\r\nb", false, 3, "a", false},
		{"lone cr", "a\rb", false, 2, "a", false},
		{"cr at buffer end waits", "a\r", false, 0, "", true},
		{"cr at eof", "a\r", true, 2, "a", false},
		{"no terminator waits", "abc", false, 0, "", true},
		{"no terminator at eof", "abc", true, 3, "abc", false},
		{"empty at eof", "", true, 0, "", true},
		{"blank line", "\nx", false, 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance, token, err := scanLines([]byte(tt.data), tt.atEOF)
			if err != nil {
				t.Fatalf("scanLines() error = %v", err)
			}
			if advance != tt.wantAdvance {
				t.Errorf("advance = %d, want %d", advance, tt.wantAdvance)
			}
			if tt.wantNil {
				if token != nil {
					t.Errorf("token = %q, want nil", token)
				}
				return
			}
			if token == nil || string(token) != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestFileSource_ContextCancellation(t *testing.T) {
	logFile := writeLog(t, "line\n")

	source := NewFileSource(logFile)
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Next(ctx)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if source.file != nil {
		t.Error("cancelled source should not have opened the file")
	}
}

func TestFileSource_ClosesAtEOF(t *testing.T) {
	logFile := writeLog(t, "only\n")

	source := NewFileSource(logFile)

	if _, err := readAll(t, source); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if source.file != nil {
		t.Error("file handle still open after EOF")
	}

	// Further calls keep returning EOF and Close stays safe.
	if _, err := source.Next(context.Background()); err != io.EOF {
		t.Errorf("Next() after EOF = %v, want io.EOF", err)
	}
	if err := source.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
