package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a line is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// FileSource implements LogSource for reading a single log file.
// The file is opened on the first call to Next.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewFileSource creates a LogSource that reads lines from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next line of the file, trimmed of surrounding whitespace.
// Blank lines are returned too so that line numbers follow the file.
// Returns io.EOF once the file is exhausted.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.path, err)
		}
		s.done = true
		if err := s.Close(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	s.line++
	raw := s.scanner.Bytes()
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("reading %s: line %d: %w", s.path, s.line, ErrInvalidEncoding)
	}

	return &LogLine{
		Content: strings.TrimSpace(string(raw)),
		Source:  s.path,
		LineNum: s.line,
	}, nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	// Lines are not length limited; the buffer grows as needed.
	s.scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	s.scanner.Split(scanLines)
	s.line = 0

	return nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a lone "\r".
// The terminator is not part of the returned line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
