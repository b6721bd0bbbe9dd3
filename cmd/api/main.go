package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/api"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := setup.LoadEnv()

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(cfg.LogLevel, true)
	appLogger := log.Logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	// API
	handler := api.NewHandler(deps.Executor, deps.Logger)
	container := restful.NewContainer()
	container.Filter(middleware.NewLogger(deps.Logger))
	container.Filter(middleware.NewRecoverPanic(deps.Logger))
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info().Str("address", addr).Msg("Starting AoC 2023 API")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
