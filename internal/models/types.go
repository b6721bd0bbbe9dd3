package models

import "time"

// Input message
type SolveRequest struct {
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Input string `json:"input"`
}

// Body of POST /api/v1/puzzles/{day}/parts/{part}
type PuzzleInput struct {
	Input string `json:"input" description:"Puzzle input, one row per line"`
}

type SolveResult struct {
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Answer   int           `json:"answer"`
	Lines    int           `json:"lines"`
	Duration time.Duration `json:"duration_ns"`
}

type PuzzleInfo struct {
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Title string `json:"title"`
}
