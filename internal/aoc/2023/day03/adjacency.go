package aoc2023day03

import (
	"errors"
	"fmt"
	"math"
)

var ErrAnswerOverflow = errors.New("answer does not fit in an int")

// Neighbours returns the eight cells around p. Cells outside the grid are
// included; nothing is ever stored there so they never match.
func Neighbours(p Point) PointSet {
	set := make(PointSet, 8)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			set.Add(Point{X: p.X + dx, Y: p.Y + dy})
		}
	}

	return set
}

// PartNumbers returns the numbers touching at least one symbol, diagonals included.
func (s *Schematic) PartNumbers() []Number {
	symbols := PointSet{}
	for _, positions := range s.Symbols {
		for p := range positions {
			symbols.Add(p)
		}
	}

	parts := []Number{}
	for _, number := range s.Numbers {
		if number.touches(symbols) {
			parts = append(parts, number)
		}
	}

	return parts
}

func (s *Schematic) PartNumberSum() (int, error) {
	total := 0
	for _, number := range s.PartNumbers() {
		sum, err := add(total, number.Value)
		if err != nil {
			return 0, fmt.Errorf("part number sum: %w", err)
		}
		total = sum
	}

	return total, nil
}

// GearRatios returns, for every occurrence of gear, the product of its two
// neighbouring numbers. Occurrences with any other neighbour count yield 0.
func (s *Schematic) GearRatios(gear rune) (map[Point]int, error) {
	owner := map[Point]int{}
	for i, number := range s.Numbers {
		for p := range number.Positions {
			owner[p] = i
		}
	}

	ratios := map[Point]int{}
	for pos := range s.Symbols[gear] {
		adjacent := map[int]struct{}{}
		for n := range Neighbours(pos) {
			if i, ok := owner[n]; ok {
				adjacent[i] = struct{}{}
			}
		}

		if len(adjacent) != 2 {
			ratios[pos] = 0
			continue
		}

		ratio := 1
		for i := range adjacent {
			product, err := multiply(ratio, s.Numbers[i].Value)
			if err != nil {
				return nil, fmt.Errorf("gear at column %d, row %d: %w", pos.X, pos.Y, err)
			}
			ratio = product
		}
		ratios[pos] = ratio
	}

	return ratios, nil
}

func (s *Schematic) GearRatioSum(gear rune) (int, error) {
	ratios, err := s.GearRatios(gear)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, ratio := range ratios {
		sum, err := add(total, ratio)
		if err != nil {
			return 0, fmt.Errorf("gear ratio sum: %w", err)
		}
		total = sum
	}

	return total, nil
}

func (n Number) touches(cells PointSet) bool {
	for p := range n.Positions {
		for neighbour := range Neighbours(p) {
			if cells.Contains(neighbour) {
				return true
			}
		}
	}

	return false
}

// add and multiply only see non-negative operands: numbers are digit runs.
func add(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrAnswerOverflow, a, b)
	}

	return a + b, nil
}

func multiply(a, b int) (int, error) {
	if b != 0 && a > math.MaxInt/b {
		return 0, fmt.Errorf("%w: %d * %d", ErrAnswerOverflow, a, b)
	}

	return a * b, nil
}
