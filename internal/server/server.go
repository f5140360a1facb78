// Package server exposes the response engine over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solacekit/solace/internal/catalog"
	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/engine"
	"github.com/solacekit/solace/internal/types"
)

// Server wires the composer and catalog into HTTP handlers.
type Server struct {
	composer *engine.Composer
	catalog  *catalog.Catalog
}

// New returns a Server.
func New(composer *engine.Composer, cat *catalog.Catalog) *Server {
	return &Server{composer: composer, catalog: cat}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.POST("/emotion-response", s.emotionResponse)
	router.GET("/interventions", s.listInterventions)
	router.GET("/routines", s.listRoutines)
	router.GET("/music", s.listMusicCategories)
	router.GET("/music/:category", s.musicByCategory)
	router.GET("/affirmations/:emotion", s.affirmations)

	return router
}

// requestLogger tags each request with an ID and logs method, path, status,
// and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		start := time.Now()
		c.Next()
		slog.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Solace emotion response engine",
		"status":  "running",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// emotionRequest is the compose call's wire shape. Field names match the
// existing consumer contract.
type emotionRequest struct {
	Emotion     string            `json:"emotion" binding:"required"`
	TextInput   string            `json:"text_input"`
	Intensity   *float64          `json:"intensity"`
	MoodHistory []types.MoodEntry `json:"mood_history"`
}

func (s *Server) emotionResponse(c *gin.Context) {
	var req emotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emotion field is required"})
		return
	}

	payload := s.composer.Compose(engine.Request{
		Emotion:   req.Emotion,
		Text:      req.TextInput,
		Intensity: req.Intensity,
		History:   req.MoodHistory,
	})
	c.JSON(http.StatusOK, payload)
}

func (s *Server) listInterventions(c *gin.Context) {
	if tag := c.Query("category"); tag != "" {
		c.JSON(http.StatusOK, s.catalog.InterventionsByCategory(tag))
		return
	}
	c.JSON(http.StatusOK, s.catalog.Interventions())
}

func (s *Server) listRoutines(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Routines())
}

func (s *Server) listMusicCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.MusicCategories()})
}

func (s *Server) musicByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.MusicByCategory(c.Param("category")))
}

func (s *Server) affirmations(c *gin.Context) {
	cat := emotion.Normalize(c.Param("emotion"))
	count := 1
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			count = parsed
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"emotion":      cat,
		"affirmations": s.catalog.Affirmations(cat, count),
	})
}
