package domain

import "strings"

// Topic describes one subject area and where its question bank lives.
type Topic struct {
	ID              uint64
	LeaderboardName string
	FileName        string
	Name            string
	Description     string
}

// Question is one multiple-choice item of a topic's bank.
// Choices[i] is rendered with letter 'A'+i.
type Question struct {
	ID          uint64
	Name        string // category label shown above the prompt
	Description string
	Answer      Choice
	Choices     []string
	Asked       bool
}

// LeaderboardEntry is one recorded session outcome.
type LeaderboardEntry struct {
	TopicName  string
	PlayerName string
	Score      float64 // percentage in [0,100]
	StartTime  string
	EndTime    string
	Duration   uint64 // seconds
}

// TimeLayout formats leaderboard start and end times.
const TimeLayout = "2006-01-02 15:04:05"

// ValidatePlayerName rejects names the leaderboard file cannot hold.
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, ",\r\n") {
		return ErrInvalidPlayerName
	}
	return nil
}
