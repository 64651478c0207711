package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yt-intel/internal/collector"
	"github.com/yt-intel/internal/config"
	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/models"
	"github.com/yt-intel/internal/pipeline"
)

// ChannelAnalyzer runs a full analysis for a channel handle
type ChannelAnalyzer interface {
	Analyze(ctx context.Context, handle string) (*pipeline.Analysis, error)
}

// Server represents the API server
type Server struct {
	router     *gin.Engine
	analyzer   ChannelAnalyzer
	llmEnabled bool
	now        func() time.Time
}

type analyzeRequest struct {
	ChannelHandle string `json:"channelHandle" binding:"required"`
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, analyzer ChannelAnalyzer) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger())

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:     router,
		analyzer:   analyzer,
		llmEnabled: cfg.LLMEnabled(),
		now:        time.Now,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	api.POST("/analyze", s.analyzeBody)
	api.GET("/analyze/:handle", s.analyzeParam)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"llm":       s.llmEnabled,
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

// analyzeBody handles POST /api/analyze
func (s *Server) analyzeBody(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "channelHandle is required")
		return
	}
	s.analyze(c, req.ChannelHandle)
}

// analyzeParam handles GET /api/analyze/:handle
func (s *Server) analyzeParam(c *gin.Context) {
	s.analyze(c, c.Param("handle"))
}

func (s *Server) analyze(c *gin.Context, handle string) {
	handle = collector.NormalizeHandle(handle)
	if handle == "" {
		fail(c, http.StatusBadRequest, "channelHandle is required")
		return
	}

	logging.Logger.Info().Str("handle", handle).Msg("analyzing channel")

	result, err := s.analyzer.Analyze(c.Request.Context(), handle)
	if err != nil {
		status := statusFor(err)
		logging.Logger.Error().Err(err).Str("handle", handle).Int("status", status).Msg("analysis failed")
		fail(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// statusFor maps pipeline errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrChannelNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDataUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
