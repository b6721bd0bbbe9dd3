package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/setup/logger"
)

func main() {
	// Load env
	envErr := setup.LoadEnv()

	cfg := setup.LoadConfig()

	// Setup logging, stderr only: stdout carries the protocol
	log := logger.New(cfg.LogLevel, true)

	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file found")
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(cfg, &log)
	if err != nil {
		log.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcpadapter.NewServer(deps.Executor)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			log.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		log.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
