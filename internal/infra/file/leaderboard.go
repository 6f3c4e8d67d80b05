package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/record"
)

// LeaderboardFile is the on-disk leaderboard. Saving always rewrites the whole
// file; there is no locking, so concurrent writers lose updates.
type LeaderboardFile struct {
	path string
	rep  Reporter
}

func NewLeaderboardFile(path string, rep Reporter) *LeaderboardFile {
	return &LeaderboardFile{path: path, rep: rep}
}

// Load returns the stored entries in file order. The header line is skipped.
func (f *LeaderboardFile) Load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	text := string(data)
	first, rest, found := strings.Cut(text, "\n")
	if strings.TrimRight(first, "\r") == record.LeaderboardHeader {
		if !found {
			return nil, nil
		}
		// keep line numbers aligned with the file
		text = "\n" + rest
	}
	return Collect(text, f.path, record.ParseLeaderboardEntry, f.rep), nil
}

// Save truncates the file and writes the header plus every entry.
func (f *LeaderboardFile) Save(ctx context.Context, entries []domain.LeaderboardEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(f.path, []byte(record.FormatLeaderboard(entries)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
