package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given; it may be absent.
const DefaultPath = "config/config.yaml"

type Config struct {
	Data  Data  `yaml:"data"`
	Quiz  Quiz  `yaml:"quiz"`
	Redis Redis `yaml:"redis"`
	Log   Log   `yaml:"log"`
}

type Data struct {
	Topics       string `yaml:"topics" env:"QUIZ_TOPICS_FILE"`
	QuestionsDir string `yaml:"questions_dir" env:"QUIZ_QUESTIONS_DIR"`
	Leaderboard  string `yaml:"leaderboard" env:"QUIZ_LEADERBOARD_FILE"`
}

type Quiz struct {
	Budget int `yaml:"budget" env:"QUIZ_BUDGET"`
}

// Redis is optional; an empty Addr disables the ranking index.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	TTL      string `yaml:"ttl" env:"REDIS_TTL"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Data: Data{
			Topics:       "data/topics.csv",
			QuestionsDir: "data/questions",
			Leaderboard:  "data/leaderboards.csv",
		},
		Quiz: Quiz{Budget: 5},
		Log:  Log{Level: "info"},
	}
}

// Load reads YAML config from path over the defaults, then applies environment
// overrides. A missing file is only an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Quiz.Budget <= 0 {
		return cfg, fmt.Errorf("quiz.budget must be positive, got %d", cfg.Quiz.Budget)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// LogLevel maps the configured level name, defaulting to info.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
