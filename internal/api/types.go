package api

import "github.com/povarna/generative-ai-agents/aoc2023/internal/models"

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type PuzzlesResponse struct {
	Puzzles []models.PuzzleInfo `json:"puzzles"`
}
