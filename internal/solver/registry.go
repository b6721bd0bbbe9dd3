package solver

import (
	"errors"
	"fmt"
	"sort"

	aoc2023day01 "github.com/povarna/generative-ai-agents/aoc2023/internal/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/generative-ai-agents/aoc2023/internal/aoc/2023/day02"
	aoc2023day03 "github.com/povarna/generative-ai-agents/aoc2023/internal/aoc/2023/day03"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/config"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/models"
)

var (
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	ErrInvalidInput  = errors.New("invalid puzzle input")
)

// PuzzleFunc computes one answer from the rows of a puzzle input.
type PuzzleFunc func(lines []string) (int, error)

type puzzleKey struct {
	day  int
	part int
}

type registration struct {
	title string
	solve PuzzleFunc
}

type Registry struct {
	puzzles map[puzzleKey]registration
}

func NewRegistry() *Registry {
	return &Registry{
		puzzles: map[puzzleKey]registration{},
	}
}

// NewDefaultRegistry registers every implemented day, parameterised by cfg.
func NewDefaultRegistry(cfg *config.PuzzlesConfig) *Registry {
	registry := NewRegistry()

	day01 := aoc2023day01.New(aoc2023day01.Options{TeenWords: cfg.Day01.TeenWords})
	registry.Register(1, 1, "Trebuchet?! - calibration values", day01.Part1)
	registry.Register(1, 2, "Trebuchet?! - calibration values with spelled out digits", day01.Part2)

	day02 := aoc2023day02.New(aoc2023day02.Set{
		Red:   cfg.Day02.Bag.Red,
		Green: cfg.Day02.Bag.Green,
		Blue:  cfg.Day02.Bag.Blue,
	})
	registry.Register(2, 1, "Cube Conundrum - possible games", day02.Part1)
	registry.Register(2, 2, "Cube Conundrum - power of minimum sets", day02.Part2)

	day03 := aoc2023day03.New(aoc2023day03.Options{
		Blank: cfg.Day03.BlankRune(),
		Gear:  cfg.Day03.GearRune(),
	})
	registry.Register(3, 1, "Gear Ratios - part numbers", day03.Part1)
	registry.Register(3, 2, "Gear Ratios - gear ratios", day03.Part2)

	return registry
}

func (r *Registry) Register(day, part int, title string, solve PuzzleFunc) {
	r.puzzles[puzzleKey{day: day, part: part}] = registration{title: title, solve: solve}
}

func (r *Registry) Lookup(day, part int) (PuzzleFunc, error) {
	reg, ok := r.puzzles[puzzleKey{day: day, part: part}]
	if !ok {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnknownPuzzle, day, part)
	}

	return reg.solve, nil
}

// Puzzles lists the registered puzzles ordered by day and part.
func (r *Registry) Puzzles() []models.PuzzleInfo {
	puzzles := make([]models.PuzzleInfo, 0, len(r.puzzles))
	for key, reg := range r.puzzles {
		puzzles = append(puzzles, models.PuzzleInfo{Day: key.day, Part: key.part, Title: reg.title})
	}

	sort.Slice(puzzles, func(i, j int) bool {
		if puzzles[i].Day != puzzles[j].Day {
			return puzzles[i].Day < puzzles[j].Day
		}
		return puzzles[i].Part < puzzles[j].Part
	})

	return puzzles
}
