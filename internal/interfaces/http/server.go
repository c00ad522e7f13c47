package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/application/usecase"
)

// Server is a small operational HTTP surface: health probe plus a JSON view
// of the same search the inline interface uses. Handy for debugging an
// index without opening Telegram.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

// NewServer creates the HTTP server listening on addr.
func NewServer(addr string, search *usecase.SearchPhotosUseCase, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/search", func(c *gin.Context) {
		results, cacheSeconds := search.Execute(c.Request.Context(), c.Query("q"))

		type resultJSON struct {
			ID      string `json:"id"`
			FileID  string `json:"file_id"`
			Caption string `json:"caption,omitempty"`
		}
		out := make([]resultJSON, 0, len(results))
		for _, r := range results {
			out = append(out, resultJSON{ID: r.ID, FileID: r.FileID, Caption: r.Caption})
		}

		c.JSON(http.StatusOK, gin.H{
			"results":       out,
			"cache_seconds": cacheSeconds,
		})
	})

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger: logger,
	}
}

// Start begins serving in the background.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.server.Addr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}
