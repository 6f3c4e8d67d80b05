package record

import (
	"strconv"
	"strings"

	"terminal-quiz/internal/domain"
)

// FormatTopic renders a topic as one topic-file line without terminator.
func FormatTopic(t domain.Topic) string {
	return strings.Join([]string{
		strconv.FormatUint(t.ID, 10),
		t.LeaderboardName,
		t.FileName,
		t.Name,
		t.Description,
	}, Delimiter)
}

// FormatQuestion renders a question as one question-bank line. Asked is not persisted.
func FormatQuestion(q domain.Question) string {
	return strings.Join([]string{
		strconv.FormatUint(q.ID, 10),
		q.Name,
		q.Description,
		q.Answer.Letter(),
		strings.Join(q.Choices, ChoiceDelimiter),
	}, Delimiter)
}

// FormatLeaderboardEntry renders an entry as one leaderboard line.
func FormatLeaderboardEntry(e domain.LeaderboardEntry) string {
	return strings.Join([]string{
		e.TopicName,
		e.PlayerName,
		strconv.FormatFloat(e.Score, 'f', -1, 64),
		e.StartTime,
		e.EndTime,
		strconv.FormatUint(e.Duration, 10),
	}, Delimiter)
}

// FormatLeaderboard renders a whole leaderboard file: header then one line per entry.
func FormatLeaderboard(entries []domain.LeaderboardEntry) string {
	var b strings.Builder
	b.WriteString(LeaderboardHeader)
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteString(FormatLeaderboardEntry(e))
		b.WriteByte('\n')
	}
	return b.String()
}
