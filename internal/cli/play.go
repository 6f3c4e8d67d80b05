package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/transport/console"
)

// NewPlayCmd runs quiz sessions and records each score.
func NewPlayCmd(flags *globalFlags) *cobra.Command {
	var (
		topic  string
		rounds int
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Answer questions from a topic (random topic when --topic is omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("--rounds must be at least 1, got %d", rounds)
			}
			service, closeFn, err := newService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeFn()

			out := cmd.OutOrStdout()
			// one reader for all rounds; buffered input must carry over
			player := console.New(cmd.InOrStdin(), out)
			for round := 1; round <= rounds; round++ {
				if rounds > 1 {
					fmt.Fprintf(out, "Round %d of %d\n", round, rounds)
				}
				res, err := service.Play(cmd.Context(), topic, player)
				switch {
				case errors.Is(err, domain.ErrTopicNotFound):
					fmt.Fprintf(out, "Topic %s not found\n", topic)
					return nil
				case errors.Is(err, domain.ErrNoTopics):
					fmt.Fprintln(out, "No topics available")
					return nil
				case err != nil:
					return err
				}
				console.PrintSummary(out, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "topic name to play")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 1, "number of sessions to play back to back")
	return cmd
}
