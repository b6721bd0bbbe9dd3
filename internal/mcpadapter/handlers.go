package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/models"
)

// Solver is implemented by solver.Executor.
type Solver interface {
	Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
	Puzzles() []models.PuzzleInfo
}

// SolvePuzzleInput is the MCP tool input schema (matches the HTTP API).
type SolvePuzzleInput struct {
	Day   int    `json:"day" jsonschema:"puzzle day, 1 to 3"`
	Part  int    `json:"part" jsonschema:"puzzle part, 1 or 2"`
	Input string `json:"input" jsonschema:"puzzle input, one row per line"`
}

type ListPuzzlesInput struct{}

type ListPuzzlesOutput struct {
	Puzzles []models.PuzzleInfo `json:"puzzles" jsonschema:"available puzzles ordered by day and part"`
}

// NewServer builds the MCP server exposing the puzzle tools.
func NewServer(solver Solver) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "aoc2023",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve one part of an Advent of Code 2023 puzzle (days 1-3) for the given input",
	}, NewSolvePuzzleHandler(solver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the Advent of Code 2023 puzzles that can be solved",
	}, NewListPuzzlesHandler(solver))

	return server
}

// NewSolvePuzzleHandler returns a tool handler that uses the given solver.
// Pass the returned function to mcp.AddTool.
func NewSolvePuzzleHandler(solver Solver) func(context.Context, *mcp.CallToolRequest, SolvePuzzleInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolvePuzzleInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return SolvePuzzle(ctx, solver, req, input)
	}
}

// SolvePuzzle runs the requested puzzle and returns the result.
func SolvePuzzle(
	ctx context.Context,
	solver Solver,
	req *mcp.CallToolRequest,
	input SolvePuzzleInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	result, err := solver.Solve(ctx, models.SolveRequest{
		Day:   input.Day,
		Part:  input.Part,
		Input: input.Input,
	})

	return nil, result, err
}

func NewListPuzzlesHandler(solver Solver) func(context.Context, *mcp.CallToolRequest, ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
		return nil, ListPuzzlesOutput{Puzzles: solver.Puzzles()}, nil
	}
}
