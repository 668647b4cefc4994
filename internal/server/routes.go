package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopdocs/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.topicHandler.Index)
	s.E.GET("/topics/:key", s.topicHandler.Show)

	api := s.E.Group("/api", middleware.RateLimiter(s.Cfg.APIRateLimit))
	api.GET("/topics", s.topicHandler.APIList)
	api.GET("/topics/:key", s.topicHandler.APIGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
