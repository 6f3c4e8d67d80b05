// Package file reads and writes the delimited text files backing topics,
// question banks and the leaderboard.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Reporter receives per-line parse failures. Implementations must not abort loading.
type Reporter interface {
	Report(source string, line int, err error)
}

// Discard ignores every report.
type Discard struct{}

func (Discard) Report(string, int, error) {}

// LogReporter logs each failure through slog.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(source string, line int, err error) {
	r.Logger.Warn("skipping malformed line", "source", source, "line", line, "error", err)
}

// NewReporter returns a LogReporter when verbose and Discard otherwise.
func NewReporter(logger *slog.Logger, verbose bool) Reporter {
	if verbose {
		return LogReporter{Logger: logger}
	}
	return Discard{}
}

// Collect parses every non-empty line of text and keeps the successful records.
// Line numbers passed to rep are 1-based.
func Collect[T any](text, source string, parse func(string) (T, error), rep Reporter) []T {
	var out []T
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parse(line)
		if err != nil {
			rep.Report(source, i+1, err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

// LoadFile reads path and collects its records. Only I/O failures are returned.
func LoadFile[T any](ctx context.Context, path string, parse func(string) (T, error), rep Reporter) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Collect(string(data), path, parse, rep), nil
}
