package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/middleware"
)

// setupErrorHandling installs the central error handler. Echo HTTP errors keep
// their status, catalog lookups that escaped a handler become 404, and anything
// else is a 500 logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			// Already carries a status.
		case catalog.IsNotFound(err):
			logger.Info("Topic not found", "error", err, "path", c.Request().URL.Path)
			he = echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(he.Code)
		} else {
			respErr = c.JSON(he.Code, map[string]any{"message": he.Message})
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
