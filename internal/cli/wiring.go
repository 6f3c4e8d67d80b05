package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"terminal-quiz/internal/app"
	"terminal-quiz/internal/config"
	"terminal-quiz/internal/infra/file"
	"terminal-quiz/internal/infra/memory"
	redisindex "terminal-quiz/internal/infra/redis"
)

// newService loads config and wires the file-backed repositories. The returned
// close func releases the Redis client when one was configured.
func newService(cmd *cobra.Command, flags *globalFlags) (*app.QuizService, func(), error) {
	cfg, err := config.Load(flags.configPath, cmd.Flags().Changed("config") || os.Getenv("CONFIG_PATH") != "")
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel()
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	rep := file.NewReporter(logger, flags.verbose)

	topics := file.NewTopicFile(cfg.Data.Topics, rep)
	banks := memory.NewBankRepository(file.NewBankLoader(cfg.Data.QuestionsDir, rep))
	boards := file.NewLeaderboardFile(cfg.Data.Leaderboard, rep)
	service := app.NewQuizService(topics, banks, boards, cfg.Quiz.Budget)

	closeFn := func() {}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(cmd.Context()).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}
		logger.Debug("ranking index enabled", "addr", cfg.Redis.Addr)
		service.WithRanking(redisindex.NewRankingIndex(client, config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)))
		closeFn = func() { client.Close() }
	}
	return service, closeFn, nil
}
