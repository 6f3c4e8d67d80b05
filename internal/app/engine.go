package app

import (
	"context"

	"terminal-quiz/internal/domain"
)

// RandomSource picks a uniform index in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Presenter renders questions and session events.
type Presenter interface {
	Present(q domain.Question, ordinal int)
	Exhausted()
}

// AnswerSource blocks until the player supplies a decoded choice.
type AnswerSource interface {
	NextAnswer(ctx context.Context) (domain.Choice, error)
}

// State is the engine's position in a session.
type State int

const (
	StateReady State = iota
	StateInProgress
	StateExhausted
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateInProgress:
		return "in progress"
	case StateExhausted:
		return "exhausted"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Result counts a session's outcome.
type Result struct {
	Correct int
	Asked   int
}

// Percentage is Correct/Asked*100, or 0 when nothing was asked.
func (r Result) Percentage() float64 {
	if r.Asked == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Asked) * 100
}

// Engine runs one session over a single topic's question bank.
// Questions live in a slice indexed by id so marking one asked mutates it in place.
type Engine struct {
	questions []domain.Question
	index     map[uint64]int
	rnd       RandomSource
	state     State
	result    Result
}

// NewEngine copies bank into a fresh session. A repeated id replaces the earlier question.
func NewEngine(bank []domain.Question, rnd RandomSource) *Engine {
	e := &Engine{
		questions: make([]domain.Question, 0, len(bank)),
		index:     make(map[uint64]int, len(bank)),
		rnd:       rnd,
	}
	for _, q := range bank {
		q.Asked = false
		if i, ok := e.index[q.ID]; ok {
			e.questions[i] = q
			continue
		}
		e.index[q.ID] = len(e.questions)
		e.questions = append(e.questions, q)
	}
	return e
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Result() Result {
	return e.result
}

// Remaining counts questions not yet asked.
func (e *Engine) Remaining() int {
	n := 0
	for i := range e.questions {
		if !e.questions[i].Asked {
			n++
		}
	}
	return n
}

// SelectUnasked draws uniformly among unasked questions. When none remain the
// engine moves to StateExhausted and ok is false.
func (e *Engine) SelectUnasked() (q domain.Question, ok bool) {
	unasked := make([]int, 0, len(e.questions))
	for i := range e.questions {
		if !e.questions[i].Asked {
			unasked = append(unasked, i)
		}
	}
	if len(unasked) == 0 {
		e.state = StateExhausted
		return domain.Question{}, false
	}
	return e.questions[unasked[e.rnd.Intn(len(unasked))]], true
}

// Score records an answer for question id and marks it asked whether or not it was correct.
func (e *Engine) Score(id uint64, answer domain.Choice) (bool, error) {
	i, ok := e.index[id]
	if !ok {
		return false, domain.ErrQuestionNotFound
	}
	q := &e.questions[i]
	if q.Asked {
		return false, domain.ErrQuestionAsked
	}
	q.Asked = true
	e.result.Asked++
	correct := answer == q.Answer
	if correct {
		e.result.Correct++
	}
	if e.state == StateReady {
		e.state = StateInProgress
	}
	return correct, nil
}

// Run asks up to budget questions, stopping early when the bank is exhausted.
// It blocks inside answers.NextAnswer for as long as the player takes.
func (e *Engine) Run(ctx context.Context, budget int, p Presenter, answers AnswerSource) (Result, error) {
	if budget <= 0 {
		return e.result, domain.ErrInvalidBudget
	}
	for ordinal := 1; e.result.Asked < budget; ordinal++ {
		q, ok := e.SelectUnasked()
		if !ok {
			p.Exhausted()
			return e.result, nil
		}
		p.Present(q, ordinal)
		choice, err := answers.NextAnswer(ctx)
		if err != nil {
			return e.result, err
		}
		if _, err := e.Score(q.ID, choice); err != nil {
			return e.result, err
		}
	}
	e.state = StateComplete
	return e.result, nil
}
