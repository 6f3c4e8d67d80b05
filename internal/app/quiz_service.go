package app

import (
	"context"
	"math/rand"
	"time"

	"terminal-quiz/internal/domain"
)

// TopicRepository loads the topic catalog.
type TopicRepository interface {
	LoadTopics(ctx context.Context) ([]domain.Topic, error)
}

// BankRepository loads a topic's question bank (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, topic domain.Topic) ([]domain.Question, error)
}

// LeaderboardRepository reads and fully rewrites the stored leaderboard.
type LeaderboardRepository interface {
	Load(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Save(ctx context.Context, entries []domain.LeaderboardEntry) error
}

// RankingIndex serves ranked views outside the leaderboard file (Redis, etc).
// Top may return more than n entries when several tie with the n-th score;
// the service orders and cuts them.
type RankingIndex interface {
	Sync(ctx context.Context, topicName string, entries []domain.LeaderboardEntry) error
	Top(ctx context.Context, topicName string, n int) ([]domain.LeaderboardEntry, error)
}

// Console is everything a play session needs from the player.
type Console interface {
	Presenter
	AnswerSource
	PlayerName(ctx context.Context) (string, error)
}

// QuizService contains the quiz use cases.
type QuizService struct {
	topics  TopicRepository
	banks   BankRepository
	boards  LeaderboardRepository
	ranking RankingIndex
	budget  int
	rnd     RandomSource
	now     func() time.Time
}

func NewQuizService(topics TopicRepository, banks BankRepository, boards LeaderboardRepository, budget int) *QuizService {
	return &QuizService{
		topics: topics,
		banks:  banks,
		boards: boards,
		budget: budget,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// WithRanking mirrors each topic's entries into idx and serves ranked views from it.
func (s *QuizService) WithRanking(idx RankingIndex) *QuizService {
	s.ranking = idx
	return s
}

// WithRandom replaces the random source; tests pass a fixed sequence.
func (s *QuizService) WithRandom(rnd RandomSource) *QuizService {
	s.rnd = rnd
	return s
}

// WithClock is test-only for deterministic timestamps.
func (s *QuizService) WithClock(now func() time.Time) *QuizService {
	s.now = now
	return s
}

// PlayResult summarizes a finished session.
type PlayResult struct {
	Topic     domain.Topic
	Result    Result
	Exhausted bool
	Started   time.Time
	Ended     time.Time
	// Entry is nil when no question was asked and nothing was recorded.
	Entry *domain.LeaderboardEntry
}

// Play runs a session for topicName (a random topic when empty) and records the
// outcome. Lookup misses return domain.ErrTopicNotFound or domain.ErrNoTopics.
func (s *QuizService) Play(ctx context.Context, topicName string, console Console) (PlayResult, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return PlayResult{}, err
	}
	// Read up front so a missing leaderboard file fails before the player answers anything.
	entries, err := s.boards.Load(ctx)
	if err != nil {
		return PlayResult{}, err
	}

	topic, err := catalog.Pick(topicName, s.rnd)
	if err != nil {
		return PlayResult{}, err
	}
	bank, err := s.banks.GetBank(ctx, topic)
	if err != nil {
		return PlayResult{}, err
	}

	engine := NewEngine(bank, s.rnd)
	out := PlayResult{Topic: topic, Started: s.now()}
	out.Result, err = engine.Run(ctx, s.budget, console, console)
	out.Ended = s.now()
	out.Exhausted = engine.State() == StateExhausted
	if err != nil {
		return out, err
	}
	if out.Result.Asked == 0 {
		return out, nil
	}

	name, err := console.PlayerName(ctx)
	if err != nil {
		return out, err
	}
	if err := domain.ValidatePlayerName(name); err != nil {
		return out, err
	}

	elapsed := out.Ended.Sub(out.Started)
	if elapsed < 0 {
		elapsed = 0
	}
	entry := domain.LeaderboardEntry{
		TopicName:  topic.Name,
		PlayerName: name,
		Score:      out.Result.Percentage(),
		StartTime:  out.Started.Format(domain.TimeLayout),
		EndTime:    out.Ended.Format(domain.TimeLayout),
		Duration:   uint64(elapsed / time.Second),
	}
	board := NewLeaderboard(entries)
	board.Add(entry)
	if err := s.boards.Save(ctx, board.List()); err != nil {
		return out, err
	}
	out.Entry = &entry

	if s.ranking != nil {
		if err := s.ranking.Sync(ctx, topic.Name, board.ForTopic(topic.Name)); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Catalog loads the topic catalog.
func (s *QuizService) Catalog(ctx context.Context) (*Catalog, error) {
	topics, err := s.topics.LoadTopics(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(topics), nil
}

// ListTopics returns topics in file order.
func (s *QuizService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.List(), nil
}

// TopicBoard is the leaderboard view for one topic.
type TopicBoard struct {
	Title   string
	Entries []domain.LeaderboardEntry
}

// Leaderboard returns topicName's entries in file order, or the best top
// entries when top > 0, titled with the topic's leaderboard name.
// Unknown topics return domain.ErrTopicNotFound.
func (s *QuizService) Leaderboard(ctx context.Context, topicName string, top int) (TopicBoard, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return TopicBoard{}, err
	}
	topic, err := catalog.Get(topicName)
	if err != nil {
		return TopicBoard{}, err
	}
	board := TopicBoard{Title: topic.LeaderboardName}

	entries, err := s.boards.Load(ctx)
	if err != nil {
		return TopicBoard{}, err
	}
	lb := NewLeaderboard(entries)

	switch {
	case top <= 0:
		board.Entries = lb.ForTopic(topicName)
	case s.ranking != nil:
		if err := s.ranking.Sync(ctx, topicName, lb.ForTopic(topicName)); err != nil {
			return TopicBoard{}, err
		}
		ranked, err := s.ranking.Top(ctx, topicName, top)
		if err != nil {
			return TopicBoard{}, err
		}
		SortByRank(ranked)
		if len(ranked) > top {
			ranked = ranked[:top]
		}
		board.Entries = ranked
	default:
		board.Entries = lb.Ranked(topicName, top)
	}
	return board, nil
}
