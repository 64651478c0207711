package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yt-intel/internal/analyzer"
	"github.com/yt-intel/internal/api"
	"github.com/yt-intel/internal/collector"
	"github.com/yt-intel/internal/config"
	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/pipeline"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(cfg.LogLevel, "yt-intel")
	if envErr != nil {
		logging.Logger.Warn().Msg(".env file not found")
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize YouTube data provider
	youtubeAPI, err := api.NewYouTubeAPI(context.Background(), cfg.YouTubeAPIKey, &http.Client{Timeout: cfg.FetchTimeout})
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to initialize YouTube API")
	}

	// Text generation is optional; without it every analysis uses its heuristic
	var gen analyzer.Generator
	if cfg.LLMEnabled() {
		gen = analyzer.NewLLMGenerator(analyzer.LLMConfig{
			APIBase:     cfg.LLMAPIBase,
			APIKey:      cfg.LLMAPIKey,
			Model:       cfg.LLMModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
			Timeout:     cfg.LLMTimeout,
		})
	} else {
		logging.Logger.Warn().Msg("LLM_API_KEY not set, intelligence report will use heuristics only")
	}

	p := pipeline.New(
		collector.New(youtubeAPI, collector.Options{
			VideoWindow:  cfg.VideoWindow,
			MaxComments:  cfg.MaxComments,
			FetchTimeout: cfg.FetchTimeout,
		}),
		analyzer.NewAssembler(analyzer.New(gen)),
	)

	server := api.NewServer(cfg, p)

	logging.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Bool("llm", cfg.LLMEnabled()).
		Msg("server starting")
	if err := server.Start(cfg.Port); err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to start server")
	}
}
