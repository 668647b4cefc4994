package server

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/shopdocs/internal/app"
	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/config"
	"github.com/nfrund/shopdocs/internal/handlers"
	"github.com/nfrund/shopdocs/internal/middleware"
	"github.com/nfrund/shopdocs/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          *config.Config
	catalog      *catalog.Registry
	topicHandler *handlers.TopicHandler
}

// New builds the catalog and the HTTP stack. A catalog construction error is
// returned as is; the caller must not start serving.
func New(cfg *config.Config) (*Server, error) {
	injector := app.NewContainer(cfg)

	reg, err := app.Catalog(injector)
	if err != nil {
		return nil, err
	}

	topicHandler, err := do.Invoke[*handlers.TopicHandler](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = do.MustInvoke[rendering.Renderer](injector).(echo.Renderer)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	slog.Info("Server initialized", "topics", reg.Len(), "addr", cfg.Addr)

	return &Server{
		E:            e,
		Cfg:          cfg,
		catalog:      reg,
		topicHandler: topicHandler,
	}, nil
}

// Catalog is a getter for the server's catalog, useful for testing.
func (s *Server) Catalog() *catalog.Registry {
	return s.catalog
}
