package solver

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/aoc2023/internal/models"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/utils"
	"github.com/rs/zerolog"
)

// PuzzleResolver finds the solver registered for a day and part
type PuzzleResolver interface {
	Lookup(day, part int) (PuzzleFunc, error)
	Puzzles() []models.PuzzleInfo
}

type Executor struct {
	resolver PuzzleResolver
	logger   *zerolog.Logger
}

func NewExecutor(resolver PuzzleResolver, logger *zerolog.Logger) *Executor {
	return &Executor{
		resolver: resolver,
		logger:   logger,
	}
}

func (e *Executor) Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	result := models.SolveResult{
		Day:  req.Day,
		Part: req.Part,
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	solve, err := e.resolver.Lookup(req.Day, req.Part)
	if err != nil {
		return result, err
	}

	lines := utils.Lines(req.Input)
	result.Lines = len(lines)

	e.logger.Info().
		Int("day", req.Day).
		Int("part", req.Part).
		Int("lines", len(lines)).
		Msg("solving puzzle")

	start := time.Now()
	answer, err := solve(lines)
	if err != nil {
		e.logger.Warn().Err(err).Int("day", req.Day).Int("part", req.Part).Msg("puzzle input rejected")
		return result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result.Answer = answer
	result.Duration = time.Since(start)

	e.logger.Info().
		Int("day", req.Day).
		Int("part", req.Part).
		Int("answer", answer).
		Dur("duration", result.Duration).
		Msg("puzzle solved")

	return result, nil
}

func (e *Executor) Puzzles() []models.PuzzleInfo {
	return e.resolver.Puzzles()
}
