package aoc2023day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc2023/internal/utils"
)

var ErrMalformedGame = errors.New("malformed game record")

// Set is one handful of cubes revealed from the bag.
type Set struct {
	Red   int
	Green int
	Blue  int
}

type Game struct {
	ID   int
	Sets []Set
}

// Possible reports whether every revealed set fits in bag.
func (g Game) Possible(bag Set) bool {
	for _, set := range g.Sets {
		if set.Red > bag.Red || set.Green > bag.Green || set.Blue > bag.Blue {
			return false
		}
	}

	return true
}

// Power multiplies the fewest cubes of each colour the game could be played with.
func (g Game) Power() int {
	minimum := Set{}
	for _, set := range g.Sets {
		minimum.Red = max(minimum.Red, set.Red)
		minimum.Green = max(minimum.Green, set.Green)
		minimum.Blue = max(minimum.Blue, set.Blue)
	}

	return minimum.Red * minimum.Green * minimum.Blue
}

type Puzzle struct {
	bag Set
}

func New(bag Set) *Puzzle {
	return &Puzzle{bag: bag}
}

// Part1 sums the ids of the games that are possible with the configured bag.
func (p *Puzzle) Part1(lines []string) (int, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, game := range games {
		if game.Possible(p.bag) {
			total += game.ID
		}
	}

	return total, nil
}

// Part2 sums the power of every game.
func (p *Puzzle) Part2(lines []string) (int, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, game := range games {
		total += game.Power()
	}

	return total, nil
}

func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, game)
	}

	return games, nil
}

// ParseGame reads a record such as "Game 1: 3 blue, 4 red; 1 red, 2 green".
// Unknown colours are ignored.
func ParseGame(line string) (Game, error) {
	header, body, found := strings.Cut(line, ":")
	if !found {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}

	label, idStr, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || label != "Game" {
		return Game{}, fmt.Errorf("%w: expected 'Game <id>', got %q", ErrMalformedGame, header)
	}

	id, err := utils.ToInt(idStr)
	if err != nil {
		return Game{}, fmt.Errorf("%w: %w", ErrMalformedGame, err)
	}

	game := Game{ID: id, Sets: []Set{}}

	for reveal := range strings.SplitSeq(body, ";") {
		set := Set{}
		for cube := range strings.SplitSeq(reveal, ",") {
			fields := strings.Fields(cube)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("%w: expected '<count> <colour>', got %q", ErrMalformedGame, strings.TrimSpace(cube))
			}

			amount, err := utils.ToInt(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("%w: %w", ErrMalformedGame, err)
			}
			if amount < 0 {
				return Game{}, fmt.Errorf("%w: negative cube count %d", ErrMalformedGame, amount)
			}

			switch fields[1] {
			case "red":
				set.Red += amount
			case "green":
				set.Green += amount
			case "blue":
				set.Blue += amount
			}
		}
		game.Sets = append(game.Sets, set)
	}

	return game, nil
}
