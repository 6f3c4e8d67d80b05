package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/transport/console"
)

// NewLeaderboardsCmd prints the leaderboard of one topic.
func NewLeaderboardsCmd(flags *globalFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "leaderboards TOPIC",
		Short: "Show recorded scores for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeFn, err := newService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeFn()

			board, err := service.Leaderboard(cmd.Context(), args[0], top)
			if errors.Is(err, domain.ErrTopicNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Topic %s not found\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			console.PrintBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "show only the N best scores, ranked by score")
	return cmd
}
