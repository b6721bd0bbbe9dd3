package aoc2023day03

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/aoc2023/internal/utils"
)

var ErrInconsistentRowLength = errors.New("inconsistent row length")

// Point is a grid cell. X is the column, Y is the row.
type Point struct {
	X int
	Y int
}

type PointSet map[Point]struct{}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Number is a horizontal run of digits together with every cell it covers.
type Number struct {
	Value     int
	Positions PointSet
}

// Schematic is the tokenized engine schematic: every number and, per symbol
// character, the cells where that character appears.
type Schematic struct {
	Numbers []Number
	Symbols map[rune]PointSet
}

// Parse scans the rows once, left to right. Blank cells are skipped, digit runs
// become numbers and any other character is recorded as a symbol.
func Parse(lines []string, blank rune) (*Schematic, error) {
	schematic := &Schematic{
		Numbers: []Number{},
		Symbols: map[rune]PointSet{},
	}

	if len(lines) == 0 {
		return schematic, nil
	}

	width := utf8.RuneCountInString(lines[0])

	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInconsistentRowLength, y, len(row), width)
		}

		for x := 0; x < width; x++ {
			cell := row[x]

			switch {
			case cell == blank:
				continue
			case isDigit(cell):
				positions := PointSet{}
				span := 0
				for x+span < width && isDigit(row[x+span]) {
					positions.Add(Point{X: x + span, Y: y})
					span++
				}

				value, err := utils.ToInt(string(row[x : x+span]))
				if err != nil {
					return nil, fmt.Errorf("row %d, column %d: %w", y, x, err)
				}

				schematic.Numbers = append(schematic.Numbers, Number{Value: value, Positions: positions})
				x += span - 1
			default:
				if _, ok := schematic.Symbols[cell]; !ok {
					schematic.Symbols[cell] = PointSet{}
				}
				schematic.Symbols[cell].Add(Point{X: x, Y: y})
			}
		}
	}

	return schematic, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
