package app_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"terminal-quiz/internal/app"
	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/infra/memory"
)

func TestPlayRecordsLeaderboardEntry(t *testing.T) {
	ctx := context.Background()
	boards := &fakeBoards{entries: []domain.LeaderboardEntry{
		{TopicName: "Go", PlayerName: "li", Score: 100, StartTime: "s", EndTime: "e", Duration: 3},
	}}
	clock := newStepClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), 95*time.Second)
	service := newTestService(boards).WithClock(clock.now)
	console := &fakeConsole{answers: []domain.Choice{domain.ChoiceB, domain.ChoiceA, domain.ChoiceB}, name: "ana"}

	out, err := service.Play(ctx, "Arithmetic", console)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if out.Result.Asked != 3 || out.Result.Correct != 2 || !out.Exhausted {
		t.Fatalf("expected 2/3 with exhaustion, got %+v", out)
	}
	if out.Entry == nil {
		t.Fatalf("expected an entry to be recorded")
	}
	want := domain.LeaderboardEntry{
		TopicName:  "Arithmetic",
		PlayerName: "ana",
		Score:      float64(2) / 3 * 100,
		StartTime:  "2024-05-01 09:00:00",
		EndTime:    "2024-05-01 09:01:35",
		Duration:   95,
	}
	if *out.Entry != want {
		t.Fatalf("expected %+v, got %+v", want, *out.Entry)
	}
	if len(boards.saved) != 2 || boards.saved[0].PlayerName != "li" || boards.saved[1] != want {
		t.Fatalf("expected full rewrite with old and new entry, got %+v", boards.saved)
	}
}

func TestPlayTopicNotFound(t *testing.T) {
	service := newTestService(&fakeBoards{})
	_, err := service.Play(context.Background(), "History", &fakeConsole{})
	if !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestPlayRandomTopicWhenNameEmpty(t *testing.T) {
	boards := &fakeBoards{}
	service := newTestService(boards).WithRandom(zeroRand{})
	console := &fakeConsole{answers: []domain.Choice{domain.ChoiceB, domain.ChoiceA, domain.ChoiceB}, name: "ana"}

	out, err := service.Play(context.Background(), "", console)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if out.Topic.Name != "Arithmetic" {
		t.Fatalf("expected first topic from zero random source, got %+v", out.Topic)
	}
}

func TestPlayEmptyBankRecordsNothing(t *testing.T) {
	boards := &fakeBoards{}
	service := newTestService(boards)
	console := &fakeConsole{name: "ana"}

	out, err := service.Play(context.Background(), "Empty", console)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if out.Result.Asked != 0 || out.Result.Percentage() != 0 || out.Entry != nil {
		t.Fatalf("expected zero-question session without entry, got %+v", out)
	}
	if boards.saved != nil || console.asked {
		t.Fatalf("nothing should be saved or prompted")
	}
}

func TestPlayRejectsInvalidPlayerName(t *testing.T) {
	boards := &fakeBoards{}
	service := newTestService(boards)
	console := &fakeConsole{answers: []domain.Choice{domain.ChoiceB, domain.ChoiceA, domain.ChoiceB}, name: "a,b"}

	if _, err := service.Play(context.Background(), "Arithmetic", console); !errors.Is(err, domain.ErrInvalidPlayerName) {
		t.Fatalf("expected ErrInvalidPlayerName, got %v", err)
	}
	if boards.saved != nil {
		t.Fatalf("leaderboard must not be written")
	}
}

func TestPlayMirrorsIntoRanking(t *testing.T) {
	ranking := &fakeRanking{}
	service := newTestService(&fakeBoards{}).WithRanking(ranking)
	console := &fakeConsole{answers: []domain.Choice{domain.ChoiceB, domain.ChoiceA, domain.ChoiceB}, name: "ana"}

	if _, err := service.Play(context.Background(), "Arithmetic", console); err != nil {
		t.Fatalf("play: %v", err)
	}
	synced := ranking.topics["Arithmetic"]
	if len(synced) != 1 || synced[0].PlayerName != "ana" {
		t.Fatalf("expected entry mirrored into ranking, got %+v", synced)
	}
}

func TestPlayRoundsShareOneBankLoad(t *testing.T) {
	loader := &countingLoader{BankLoader: testBanks()}
	boards := &fakeBoards{}
	service := app.NewQuizService(testTopics(), memory.NewBankRepository(loader), boards, 5).WithRandom(zeroRand{})

	for round := 1; round <= 2; round++ {
		console := &fakeConsole{answers: []domain.Choice{domain.ChoiceB, domain.ChoiceA, domain.ChoiceC}, name: "ana"}
		out, err := service.Play(context.Background(), "Arithmetic", console)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if out.Result.Asked != 3 || out.Result.Correct != 3 {
			t.Fatalf("round %d: expected a fresh full bank, got %+v", round, out.Result)
		}
		boards.entries = boards.saved
	}
	if loader.calls != 1 {
		t.Fatalf("expected the bank to be read once, got %d loads", loader.calls)
	}
	if len(boards.saved) != 2 {
		t.Fatalf("expected one entry per round, got %+v", boards.saved)
	}
}

func TestLeaderboardView(t *testing.T) {
	boards := &fakeBoards{entries: []domain.LeaderboardEntry{
		{TopicName: "Arithmetic", PlayerName: "ana", Score: 40},
		{TopicName: "Arithmetic", PlayerName: "bo", Score: 90},
		{TopicName: "Other", PlayerName: "cy", Score: 100},
	}}
	service := newTestService(boards)

	board, err := service.Leaderboard(context.Background(), "Arithmetic", 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if board.Title != "Number Crunchers" || len(board.Entries) != 2 || board.Entries[0].PlayerName != "ana" {
		t.Fatalf("expected titled board in file order, got %+v", board)
	}

	board, err = service.Leaderboard(context.Background(), "Arithmetic", 1)
	if err != nil {
		t.Fatalf("leaderboard top: %v", err)
	}
	if len(board.Entries) != 1 || board.Entries[0].PlayerName != "bo" {
		t.Fatalf("expected bo on top, got %+v", board.Entries)
	}

	if _, err := service.Leaderboard(context.Background(), "Unknown", 0); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestLeaderboardTopUsesRanking(t *testing.T) {
	boards := &fakeBoards{entries: []domain.LeaderboardEntry{
		{TopicName: "Arithmetic", PlayerName: "ana", Score: 40},
		{TopicName: "Arithmetic", PlayerName: "bo", Score: 90},
	}}
	ranking := &fakeRanking{}
	service := newTestService(boards).WithRanking(ranking)

	board, err := service.Leaderboard(context.Background(), "Arithmetic", 1)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(ranking.topics["Arithmetic"]) != 2 {
		t.Fatalf("expected topic entries synced, got %+v", ranking.topics)
	}
	if len(board.Entries) != 1 || board.Entries[0].PlayerName != "bo" {
		t.Fatalf("expected bo from ranking, got %+v", board.Entries)
	}
}

func TestLeaderboardTopBreaksTiesAfterRanking(t *testing.T) {
	boards := &fakeBoards{entries: []domain.LeaderboardEntry{
		{TopicName: "Arithmetic", PlayerName: "ana", Score: 80, Duration: 5},
		{TopicName: "Arithmetic", PlayerName: "zed", Score: 80, Duration: 50},
		{TopicName: "Arithmetic", PlayerName: "bo", Score: 20, Duration: 1},
	}}
	plain := newTestService(boards)
	ranked := newTestService(boards).WithRanking(&fakeRanking{})

	for name, service := range map[string]*app.QuizService{"file": plain, "ranking": ranked} {
		board, err := service.Leaderboard(context.Background(), "Arithmetic", 1)
		if err != nil {
			t.Fatalf("%s: leaderboard: %v", name, err)
		}
		if len(board.Entries) != 1 || board.Entries[0].PlayerName != "ana" {
			t.Fatalf("%s: expected faster ana to win the tie, got %+v", name, board.Entries)
		}
	}
}

func TestListTopics(t *testing.T) {
	topics, err := newTestService(&fakeBoards{}).ListTopics(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(topics) != 2 || topics[1].Name != "Empty" {
		t.Fatalf("unexpected topics %+v", topics)
	}
}

func newTestService(boards *fakeBoards) *app.QuizService {
	banks := memory.NewBankRepository(testBanks())
	return app.NewQuizService(testTopics(), banks, boards, 5).WithRandom(zeroRand{})
}

func testTopics() staticTopics {
	return staticTopics{
		{ID: 1, LeaderboardName: "Number Crunchers", FileName: "arith.csv", Name: "Arithmetic", Description: "Sums"},
		{ID: 2, LeaderboardName: "Nobody", FileName: "empty.csv", Name: "Empty", Description: "No questions"},
	}
}

func testBanks() *memory.StaticBankLoader {
	return memory.NewStaticBankLoader(map[string][]domain.Question{
		"arith.csv": {
			{ID: 1, Name: "Addition", Description: "2 + 2?", Answer: domain.ChoiceB, Choices: []string{"3", "4", "5", "6"}},
			{ID: 2, Name: "Addition", Description: "1 + 0?", Answer: domain.ChoiceA, Choices: []string{"1", "2", "3", "4"}},
			{ID: 3, Name: "Subtraction", Description: "5 - 2?", Answer: domain.ChoiceC, Choices: []string{"1", "2", "3", "4"}},
		},
		"empty.csv": {},
	})
}

type countingLoader struct {
	memory.BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx, topic)
}

type staticTopics []domain.Topic

func (s staticTopics) LoadTopics(context.Context) ([]domain.Topic, error) {
	return s, nil
}

type fakeBoards struct {
	entries []domain.LeaderboardEntry
	saved   []domain.LeaderboardEntry
}

func (b *fakeBoards) Load(context.Context) ([]domain.LeaderboardEntry, error) {
	return b.entries, nil
}

func (b *fakeBoards) Save(_ context.Context, entries []domain.LeaderboardEntry) error {
	b.saved = entries
	return nil
}

// fakeRanking orders by score alone, later entries first on ties, and returns
// every entry tied with the n-th score.
type fakeRanking struct {
	topics map[string][]domain.LeaderboardEntry
}

func (r *fakeRanking) Sync(_ context.Context, topicName string, entries []domain.LeaderboardEntry) error {
	if r.topics == nil {
		r.topics = make(map[string][]domain.LeaderboardEntry)
	}
	r.topics[topicName] = append([]domain.LeaderboardEntry(nil), entries...)
	return nil
}

func (r *fakeRanking) Top(_ context.Context, topicName string, n int) ([]domain.LeaderboardEntry, error) {
	stored := r.topics[topicName]
	out := make([]domain.LeaderboardEntry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n <= 0 || n >= len(out) {
		return out, nil
	}
	cut := n
	for cut < len(out) && out[cut].Score == out[n-1].Score {
		cut++
	}
	return out[:cut], nil
}

type fakeConsole struct {
	answers []domain.Choice
	name    string
	i       int
	asked   bool
}

func (c *fakeConsole) Present(domain.Question, int) {}

func (c *fakeConsole) Exhausted() {}

func (c *fakeConsole) NextAnswer(context.Context) (domain.Choice, error) {
	if c.i >= len(c.answers) {
		return 0, errors.New("no scripted answer left")
	}
	a := c.answers[c.i]
	c.i++
	return a, nil
}

func (c *fakeConsole) PlayerName(context.Context) (string, error) {
	c.asked = true
	return c.name, nil
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
	n    int
}

func newStepClock(start time.Time, step time.Duration) *stepClock {
	return &stepClock{t: start, step: step}
}

func (c *stepClock) now() time.Time {
	t := c.t.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}
