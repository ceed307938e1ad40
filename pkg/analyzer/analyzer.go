package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ccollicutt/logscan/pkg/parser"
)

// Analyzer classifies every line of a log source against an ordered rule list.
type Analyzer struct {
	rules  []Rule
	logger *slog.Logger
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithRules replaces the default rules. Order matters: the first matching rule wins.
func WithRules(rules []Rule) AnalyzerOption {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithLogger sets the logger used for per-line debug output.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer using DefaultRules unless overridden.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		rules:  DefaultRules(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	if len(a.rules) == 0 {
		return nil, errors.New("no classification rules")
	}

	for i, rule := range a.rules {
		if rule.Marker == "" {
			return nil, fmt.Errorf("rules[%d]: marker is required", i)
		}
		switch rule.Category {
		case CategoryError, CategoryWarning:
		default:
			return nil, fmt.Errorf("rules[%d] (%s): unknown category %q", i, rule.Marker, rule.Category)
		}
	}

	return a, nil
}

// Classify returns the category of the first rule whose marker appears in content.
func (a *Analyzer) Classify(content string) (Category, bool) {
	for _, rule := range a.rules {
		if strings.Contains(content, rule.Marker) {
			return rule.Category, true
		}
	}
	return "", false
}

// Analyze reads source to the end and returns the classification result.
// No result is returned if reading fails part way through.
func (a *Analyzer) Analyze(ctx context.Context, source parser.LogSource) (*Result, error) {
	result := &Result{
		Errors:    []Match{},
		Warnings:  []Match{},
		StartTime: time.Now(),
	}

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if result.Source == "" {
			result.Source = line.Source
		}
		result.LinesProcessed++

		category, ok := a.Classify(line.Content)
		if !ok {
			continue
		}

		match := Match{LineNum: line.LineNum, Content: line.Content}
		switch category {
		case CategoryError:
			result.ErrorCount++
			result.Errors = append(result.Errors, match)
		case CategoryWarning:
			result.WarningCount++
			result.Warnings = append(result.Warnings, match)
		}

		a.logger.Debug("line.classified",
			"source", line.Source,
			"line", line.LineNum,
			"category", string(category))
	}

	result.EndTime = time.Now()
	return result, nil
}
