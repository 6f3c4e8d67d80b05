package memory

import (
	"context"
	"sync"

	"terminal-quiz/internal/domain"
)

// BankLoader fetches a topic's question bank from a backing store (e.g., the questions directory).
type BankLoader interface {
	LoadBank(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// BankRepository keeps every bank it has parsed for the life of the process, so
// consecutive rounds on one topic read its file once. Failed loads are not kept.
type BankRepository struct {
	loader BankLoader

	mu    sync.Mutex
	cache map[string][]domain.Question
}

func NewBankRepository(loader BankLoader) *BankRepository {
	return &BankRepository{
		loader: loader,
		cache:  make(map[string][]domain.Question),
	}
}

// GetBank returns a private copy of the bank so sessions can mark questions asked.
func (r *BankRepository) GetBank(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if questions, ok := r.cache[topic.FileName]; ok {
		return cloneBank(questions), nil
	}
	questions, err := r.loader.LoadBank(ctx, topic)
	if err != nil {
		return nil, err
	}
	r.cache[topic.FileName] = questions
	return cloneBank(questions), nil
}

func cloneBank(questions []domain.Question) []domain.Question {
	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		q.Choices = append([]string(nil), q.Choices...)
		q.Asked = false
		out[i] = q
	}
	return out
}

// StaticBankLoader is a simple loader backed by an in-memory map keyed by file name (useful for tests/demos).
type StaticBankLoader struct {
	banks map[string][]domain.Question
}

func NewStaticBankLoader(banks map[string][]domain.Question) *StaticBankLoader {
	return &StaticBankLoader{banks: banks}
}

func (l *StaticBankLoader) LoadBank(_ context.Context, topic domain.Topic) ([]domain.Question, error) {
	if bank, ok := l.banks[topic.FileName]; ok {
		return bank, nil
	}
	return nil, domain.ErrBankNotFound
}
