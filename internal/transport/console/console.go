// Package console is the terminal side of a quiz session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"terminal-quiz/internal/app"
	"terminal-quiz/internal/domain"
)

const (
	answerPrompt = "Input ['A' | 'B' | 'C' | 'D']: "
	namePrompt   = "Enter your name for the leaderboard: "
)

// Console reads answers line by line and writes prompts to out.
// Reads block until a line arrives; there is no timeout.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

var _ app.Console = (*Console)(nil)

// Present prints the category, the numbered question and its lettered choices.
func (c *Console) Present(q domain.Question, ordinal int) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, q.Name)
	fmt.Fprintf(c.out, "%d. %s\n", ordinal, q.Description)
	for i, choice := range q.Choices {
		fmt.Fprintf(c.out, "%s. %s\n", domain.ChoiceLetter(i), choice)
	}
}

func (c *Console) Exhausted() {
	fmt.Fprintln(c.out, "No more questions can be asked.")
}

// NextAnswer re-prompts until the player types a single letter A-D, in either case.
func (c *Console) NextAnswer(ctx context.Context) (domain.Choice, error) {
	for {
		line, err := c.prompt(ctx, answerPrompt)
		if line != "" {
			if choice, cerr := domain.ToChoice(strings.ToUpper(line)); cerr == nil {
				return choice, nil
			}
			fmt.Fprintln(c.out, "Please enter a single letter between A and D.")
		}
		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
	}
}

// PlayerName re-prompts until the name fits in a leaderboard line.
func (c *Console) PlayerName(ctx context.Context) (string, error) {
	for {
		line, err := c.prompt(ctx, namePrompt)
		if domain.ValidatePlayerName(line) == nil {
			return line, nil
		}
		if err != nil {
			return "", fmt.Errorf("read player name: %w", err)
		}
		fmt.Fprintln(c.out, "Names cannot be empty or contain commas.")
	}
}

func (c *Console) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

// PrintTopics lists every topic with its description.
func PrintTopics(w io.Writer, topics []domain.Topic) {
	if len(topics) == 0 {
		fmt.Fprintln(w, "No topics available.")
		return
	}
	for _, t := range topics {
		fmt.Fprintf(w, "%d. %s - %s\n", t.ID, t.Name, t.Description)
	}
}

// PrintBoard prints a topic leaderboard in the order given.
func PrintBoard(w io.Writer, board app.TopicBoard) {
	fmt.Fprintln(w, board.Title)
	if len(board.Entries) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return
	}
	for i, e := range board.Entries {
		fmt.Fprintf(w, "%d. %s  %.2f%%  %ds  (%s - %s)\n", i+1, e.PlayerName, e.Score, e.Duration, e.StartTime, e.EndTime)
	}
}

// PrintSummary reports a finished session.
func PrintSummary(w io.Writer, res app.PlayResult) {
	if res.Result.Asked == 0 {
		fmt.Fprintf(w, "No questions were asked for %s; nothing recorded.\n", res.Topic.Name)
		return
	}
	fmt.Fprintf(w, "\n%s: %d of %d correct (%.2f%%) in %s\n",
		res.Topic.Name, res.Result.Correct, res.Result.Asked, res.Result.Percentage(),
		res.Ended.Sub(res.Started).Truncate(time.Second))
}
