package aoc2023day03

import "fmt"

type Options struct {
	Blank rune
	Gear  rune
}

func DefaultOptions() Options {
	return Options{Blank: '.', Gear: '*'}
}

// Answer holds both results for one schematic.
type Answer struct {
	PartNumbers int `json:"part_numbers"`
	GearRatios  int `json:"gear_ratios"`
}

type Puzzle struct {
	opts Options
}

func New(opts Options) *Puzzle {
	return &Puzzle{opts: opts}
}

// Part1 sums every part number in the schematic.
func (p *Puzzle) Part1(lines []string) (int, error) {
	schematic, err := Parse(lines, p.opts.Blank)
	if err != nil {
		return 0, fmt.Errorf("failed to parse schematic: %w", err)
	}

	return schematic.PartNumberSum()
}

// Part2 sums the gear ratios of every gear symbol.
func (p *Puzzle) Part2(lines []string) (int, error) {
	schematic, err := Parse(lines, p.opts.Blank)
	if err != nil {
		return 0, fmt.Errorf("failed to parse schematic: %w", err)
	}

	return schematic.GearRatioSum(p.opts.Gear)
}

func (p *Puzzle) Solve(lines []string) (Answer, error) {
	schematic, err := Parse(lines, p.opts.Blank)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to parse schematic: %w", err)
	}

	partNumbers, err := schematic.PartNumberSum()
	if err != nil {
		return Answer{}, err
	}
	gearRatios, err := schematic.GearRatioSum(p.opts.Gear)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		PartNumbers: partNumbers,
		GearRatios:  gearRatios,
	}, nil
}
