package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required column is absent or blank.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidInteger indicates a column that should hold an unsigned integer.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrInvalidFloat indicates a column that should hold a decimal number.
	ErrInvalidFloat = errors.New("invalid float")
	// ErrInvalidAnswer indicates an answer token outside A-D.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrInvalidFileName marks a bank file name that leaves the questions directory.
	ErrInvalidFileName = errors.New("file name must be a relative path inside the questions directory")
)

var (
	// ErrTopicNotFound is returned when no topic matches the requested name.
	ErrTopicNotFound = errors.New("topic not found")
	// ErrNoTopics is returned when a random topic is requested from an empty catalog.
	ErrNoTopics = errors.New("no topics available")
	// ErrBankNotFound indicates a topic whose question bank could not be found.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrQuestionNotFound indicates an id that is not part of the session's bank.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionAsked is returned when scoring a question twice in one session.
	ErrQuestionAsked = errors.New("question already asked")
	// ErrInvalidBudget rejects sessions that could never ask a question.
	ErrInvalidBudget = errors.New("question budget must be positive")
	// ErrInvalidPlayerName rejects names that would break the leaderboard file.
	ErrInvalidPlayerName = errors.New("player name must be non-empty and contain no comma")
)

// ParseError reports which column of a record failed and why.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError builds a ParseError for field wrapping kind.
func FieldError(field string, kind error) error {
	return &ParseError{Field: field, Err: kind}
}
