package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/config"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/solver"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel string
	APIPort  string
}

type Dependencies struct {
	Executor *solver.Executor
	Logger   *zerolog.Logger
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Defaults to ./.env.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

func LoadConfig() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		APIPort:  getEnv("AOC_API_PORT", "18082"),
	}
}

// Wire builds the solver stack. A missing puzzles config falls back to the
// built-in defaults; an unreadable or invalid one is an error.
func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	puzzlesConfig, err := config.LoadPuzzlesConfig()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load puzzles config: %w", err)
		}
		logger.Warn().Err(err).Msg("No puzzles config found, using defaults")
		puzzlesConfig = config.Default()
	}

	registry := solver.NewDefaultRegistry(puzzlesConfig)
	exec := solver.NewExecutor(registry, logger)

	logger.Debug().
		Int("puzzles", len(registry.Puzzles())).
		Str("log_level", cfg.LogLevel).
		Msg("Dependencies wired")

	return &Dependencies{
		Executor: exec,
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
