package api

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"fightreel/fight"
	"fightreel/processor"
)

// Server exposes the renderer over HTTP.
type Server struct {
	proc *processor.Processor
	rng  *rand.Rand
	mu   sync.Mutex // renders are heavy; one at a time
}

// NewServer creates an API server around a processor.
func NewServer(proc *processor.Processor) *Server {
	return &Server{
		proc: proc,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RenderRequest is the POST /api/render body. All fields optional; an
// empty body renders a random matchup and uploads if configured.
type RenderRequest struct {
	Left       string `json:"left"`
	Right      string `json:"right"`
	OutputPath string `json:"output_path"`
	SkipUpload bool   `json:"skip_upload"`
}

// RenderResponse reports the outcome of a render call.
type RenderResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	OutputPath string `json:"output_path,omitempty"`
	VideoID    string `json:"video_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Router constructs the Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.POST("/api/render", s.handleRender)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRender(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, RenderResponse{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matchup, err := s.resolveMatchup(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, RenderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	result, err := s.proc.Run(c.Request.Context(), processor.Job{
		Matchup:    matchup,
		OutputPath: req.OutputPath,
		Upload:     !req.SkipUpload,
	})
	if err != nil {
		log.Printf("Render failed: %v", err)
		c.JSON(http.StatusInternalServerError, RenderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	message := "rendered " + matchup.VersusLabel()
	if result.Uploaded {
		message += ", uploaded"
	}

	c.JSON(http.StatusOK, RenderResponse{
		Success:    true,
		Message:    message,
		OutputPath: result.OutputPath,
		VideoID:    result.VideoID,
	})
}

func (s *Server) resolveMatchup(req RenderRequest) (fight.Matchup, error) {
	if req.Left == "" && req.Right == "" {
		return fight.RandomMatchup(s.rng), nil
	}
	return fight.MatchupFromNames(req.Left, req.Right)
}
