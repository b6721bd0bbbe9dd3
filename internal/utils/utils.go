package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to a number: %w", s, err)
	}

	return n, nil
}

// Lines splits puzzle input into rows. A trailing carriage return is trimmed
// from every row and empty rows at the end are dropped. Empty rows in between
// are kept so callers can reject them.
func Lines(input string) []string {
	lines := []string{}

	for line := range strings.SplitSeq(input, "\n") {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
