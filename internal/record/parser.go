// Package record converts single delimited lines into domain records and back.
package record

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"terminal-quiz/internal/domain"
)

const (
	// Delimiter separates the columns of every record kind.
	Delimiter = ","
	// ChoiceDelimiter separates the choices inside a question's last column.
	ChoiceDelimiter = "|"
)

// LeaderboardHeader is the first line of a leaderboard file.
const LeaderboardHeader = "topic_name,player_name,score,start_time,end_time,duration"

// fields splits a line after stripping the line terminator.
type fields []string

func split(line string) fields {
	return strings.Split(strings.TrimRight(line, "\r\n"), Delimiter)
}

func (f fields) at(i int) string {
	if i >= len(f) {
		return ""
	}
	return strings.TrimSpace(f[i])
}

func (f fields) required(i int, name string) (string, error) {
	v := f.at(i)
	if v == "" {
		return "", domain.FieldError(name, domain.ErrMissingField)
	}
	return v, nil
}

func (f fields) unsigned(i int, name string) (uint64, error) {
	v, err := strconv.ParseUint(f.at(i), 10, 64)
	if err != nil {
		return 0, domain.FieldError(name, domain.ErrInvalidInteger)
	}
	return v, nil
}

// ParseTopic parses `id,leaderboard_name,file_name,topic_name,topic_description`.
func ParseTopic(line string) (domain.Topic, error) {
	f := split(line)
	id, err := f.unsigned(0, "id")
	if err != nil {
		return domain.Topic{}, err
	}
	topic := domain.Topic{ID: id}
	for i, dst := range []struct {
		name string
		val  *string
	}{
		{"leaderboard_name", &topic.LeaderboardName},
		{"file_name", &topic.FileName},
		{"topic_name", &topic.Name},
		{"topic_description", &topic.Description},
	} {
		if *dst.val, err = f.required(i+1, dst.name); err != nil {
			return domain.Topic{}, err
		}
	}
	if !filepath.IsLocal(topic.FileName) {
		return domain.Topic{}, domain.FieldError("file_name", domain.ErrInvalidFileName)
	}
	return topic, nil
}

// ParseQuestion parses `id,name,description,answer,choice1|choice2|...`.
func ParseQuestion(line string) (domain.Question, error) {
	f := split(line)
	id, err := f.unsigned(0, "id")
	if err != nil {
		return domain.Question{}, err
	}
	q := domain.Question{ID: id}
	if q.Name, err = f.required(1, "name"); err != nil {
		return domain.Question{}, err
	}
	if q.Description, err = f.required(2, "description"); err != nil {
		return domain.Question{}, err
	}
	token, err := f.required(3, "answer")
	if err != nil {
		return domain.Question{}, err
	}
	if q.Answer, err = domain.ToChoice(token); err != nil {
		return domain.Question{}, domain.FieldError("answer", domain.ErrInvalidAnswer)
	}
	raw, err := f.required(4, "choices")
	if err != nil {
		return domain.Question{}, err
	}
	q.Choices = splitChoices(raw)
	if q.Answer.Index() >= len(q.Choices) {
		return domain.Question{}, domain.FieldError("answer", domain.ErrInvalidAnswer)
	}
	return q, nil
}

func splitChoices(raw string) []string {
	parts := strings.Split(raw, ChoiceDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// ParseLeaderboardEntry parses `topic_name,player_name,score,start_time,end_time,duration`.
func ParseLeaderboardEntry(line string) (domain.LeaderboardEntry, error) {
	f := split(line)
	var (
		e   domain.LeaderboardEntry
		err error
	)
	if e.TopicName, err = f.required(0, "topic_name"); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	if e.PlayerName, err = f.required(1, "player_name"); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	e.Score, err = strconv.ParseFloat(f.at(2), 64)
	if err != nil || math.IsNaN(e.Score) || e.Score < 0 || e.Score > 100 {
		return domain.LeaderboardEntry{}, domain.FieldError("score", domain.ErrInvalidFloat)
	}
	if e.StartTime, err = f.required(3, "start_time"); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	if e.EndTime, err = f.required(4, "end_time"); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	if e.Duration, err = f.unsigned(5, "duration"); err != nil {
		return domain.LeaderboardEntry{}, err
	}
	return e, nil
}
