package cli

import (
	"os"

	"github.com/spf13/cobra"
	"terminal-quiz/internal/config"
)

type globalFlags struct {
	configPath string
	verbose    bool
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = config.DefaultPath
	}

	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Terminal quiz with per-topic question banks and leaderboards",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "report malformed lines while loading data files")
	cmd.AddCommand(NewPlayCmd(flags))
	cmd.AddCommand(NewLeaderboardsCmd(flags))
	cmd.AddCommand(NewListCmd(flags))
	return cmd
}
