package cli

import (
	"github.com/spf13/cobra"
	"terminal-quiz/internal/transport/console"
)

// NewListCmd lists all topics.
func NewListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeFn, err := newService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeFn()

			topics, err := service.ListTopics(cmd.Context())
			if err != nil {
				return err
			}
			console.PrintTopics(cmd.OutOrStdout(), topics)
			return nil
		},
	}
}
