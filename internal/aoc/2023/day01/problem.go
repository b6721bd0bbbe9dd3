package aoc2023day01

import (
	"sort"
	"strconv"
	"strings"
)

type DecodeStyle int

const (
	DigitsOnly DecodeStyle = iota
	DigitsAndWords
)

var words = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

var teenWords = map[string]int{
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
}

type spelled struct {
	word  string
	value int
}

type Options struct {
	// TeenWords also recognises ten to twenty. Every digit of a matched value
	// is kept, so "thirteen" decodes to 1 and 3.
	TeenWords bool
}

type Puzzle struct {
	vocabulary []spelled
}

func New(opts Options) *Puzzle {
	vocabulary := []spelled{}
	for word, value := range words {
		vocabulary = append(vocabulary, spelled{word: word, value: value})
	}
	if opts.TeenWords {
		for word, value := range teenWords {
			vocabulary = append(vocabulary, spelled{word: word, value: value})
		}
	}

	// "seventeen" has to win over "seven"
	sort.Slice(vocabulary, func(i, j int) bool {
		return vocabulary[i].value > vocabulary[j].value
	})

	return &Puzzle{vocabulary: vocabulary}
}

// Part1 sums the calibration values built from literal digits only.
func (p *Puzzle) Part1(lines []string) (int, error) {
	return p.sum(lines, DigitsOnly), nil
}

// Part2 sums the calibration values when spelled out numbers count as digits.
func (p *Puzzle) Part2(lines []string) (int, error) {
	return p.sum(lines, DigitsAndWords), nil
}

func (p *Puzzle) sum(lines []string, style DecodeStyle) int {
	result := 0
	for _, line := range lines {
		result += p.CalibrationValue(line, style)
	}

	return result
}

// CalibrationValue combines the first and last digit of line. A line with a
// single digit uses it twice, a line without digits is worth 0.
func (p *Puzzle) CalibrationValue(line string, style DecodeStyle) int {
	digits := p.decode(line, style)

	if len(digits) == 0 {
		return 0
	}

	return digits[0]*10 + digits[len(digits)-1]
}

func (p *Puzzle) decode(line string, style DecodeStyle) []int {
	digits := []int{}

	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			digits = append(digits, int(line[i]-'0'))
			continue
		}
		if style == DigitsOnly {
			continue
		}

		for _, s := range p.vocabulary {
			if strings.HasPrefix(line[i:], s.word) {
				for _, d := range strconv.Itoa(s.value) {
					digits = append(digits, int(d-'0'))
				}
				break
			}
		}
	}

	return digits
}
