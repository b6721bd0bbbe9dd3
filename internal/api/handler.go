package api

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/models"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/solver"
	"github.com/rs/zerolog"
)

// Solver runs a registered puzzle against an input
type Solver interface {
	Solve(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
	Puzzles() []models.PuzzleInfo
}

type Handler struct {
	solver Solver
	logger *zerolog.Logger
}

func NewHandler(solver Solver, logger *zerolog.Logger) *Handler {
	return &Handler{
		solver: solver,
		logger: logger,
	}
}

// POST /api/v1/puzzles/{day}/parts/{part}
// Body: PuzzleInput
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	day, err := intPathParameter(req, "day")
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	part, err := intPathParameter(req, "part")
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var input models.PuzzleInput
	if err := req.ReadEntity(&input); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Int("day", day).
		Int("part", part).
		Int("input_bytes", len(input.Input)).
		Msg("Start solving")

	result, err := h.solver.Solve(req.Request.Context(), models.SolveRequest{
		Day:   day,
		Part:  part,
		Input: input.Input,
	})
	if err != nil {
		h.logger.Warn().Err(err).Int("day", day).Int("part", part).Msg("Solve failed")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	h.logger.Info().
		Int("day", result.Day).
		Int("part", result.Part).
		Int("answer", result.Answer).
		Msg("Solve complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/puzzles
func (h *Handler) Puzzles(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, PuzzlesResponse{Puzzles: h.solver.Puzzles()})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func intPathParameter(req *restful.Request, name string) (int, error) {
	value, err := strconv.Atoi(req.PathParameter(name))
	if err != nil {
		return 0, fmt.Errorf("path parameter %s must be a number, got %q", name, req.PathParameter(name))
	}

	return value, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrUnknownPuzzle):
		return http.StatusNotFound
	case errors.Is(err, solver.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
