package app

import (
	"sort"

	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/record"
)

// Leaderboard keeps entries in insertion order.
type Leaderboard struct {
	entries []domain.LeaderboardEntry
}

func NewLeaderboard(entries []domain.LeaderboardEntry) *Leaderboard {
	return &Leaderboard{entries: append([]domain.LeaderboardEntry(nil), entries...)}
}

func (l *Leaderboard) Add(e domain.LeaderboardEntry) {
	l.entries = append(l.entries, e)
}

func (l *Leaderboard) List() []domain.LeaderboardEntry {
	return append([]domain.LeaderboardEntry(nil), l.entries...)
}

// ForTopic returns the entries for topicName in insertion order.
func (l *Leaderboard) ForTopic(topicName string) []domain.LeaderboardEntry {
	var out []domain.LeaderboardEntry
	for _, e := range l.entries {
		if e.TopicName == topicName {
			out = append(out, e)
		}
	}
	return out
}

// Ranked returns at most limit entries for topicName, best first.
// A limit <= 0 returns all of them.
func (l *Leaderboard) Ranked(topicName string, limit int) []domain.LeaderboardEntry {
	entries := l.ForTopic(topicName)
	SortByRank(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// SortByRank orders by score desc, then faster duration, then player name.
func SortByRank(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].Duration != entries[j].Duration {
			return entries[i].Duration < entries[j].Duration
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})
}

// Serialize renders the full leaderboard file, header included.
func (l *Leaderboard) Serialize() string {
	return record.FormatLeaderboard(l.entries)
}
