package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/shopdocs/internal/catalog"
	"github.com/nfrund/shopdocs/internal/middleware"
	"github.com/nfrund/shopdocs/internal/rendering"
	"github.com/nfrund/shopdocs/internal/view"
	"github.com/nfrund/shopdocs/web/src/templates/layouts"
	"github.com/nfrund/shopdocs/web/src/templates/pages"
)

// TopicHandler serves the catalog as HTML pages and as a JSON API. It only reads
// the registry.
type TopicHandler struct {
	catalog  *catalog.Registry
	renderer rendering.Renderer
	appName  string
	// toc is built once; registry order never changes.
	toc []catalog.Unit
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(reg *catalog.Registry, renderer rendering.Renderer, appName string) *TopicHandler {
	return &TopicHandler{
		catalog:  reg,
		renderer: renderer,
		appName:  appName,
		toc:      reg.Entries(),
	}
}

// Index renders the table of contents.
func (h *TopicHandler) Index(c echo.Context) error {
	var last *catalog.Unit
	if key := view.LastTopic(c); key != "" {
		// The remembered topic may come from an older deployment.
		if u, err := h.catalog.Lookup(key); err == nil {
			last = &u
		}
	}

	return h.page(c, http.StatusOK, "", "", pages.Index(h.toc, last))
}

// Show renders a topic page, or the fragment alone for htmx navigation. Unknown
// keys get the not-found fallback with a 404.
func (h *TopicHandler) Show(c echo.Context) error {
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")
	key := routeKey(c, c.Param("key"))
	logger := middleware.FromContext(c.Request().Context())

	u, err := h.catalog.Lookup(key)
	if err != nil {
		if !catalog.IsNotFound(err) {
			return err
		}
		logger.Info("Topic not found", "key", key)
		if isHTMX(c) {
			return h.renderer.RenderPage(c, http.StatusNotFound, pages.NotFound(key))
		}
		return h.page(c, http.StatusNotFound, "Tema no encontrado", "", pages.NotFound(key))
	}

	if err := view.RememberTopic(c, u.Key); err != nil {
		logger.Warn("Failed to remember last topic", "key", u.Key, "error", err)
	}

	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, pages.Topic(u))
	}
	return h.page(c, http.StatusOK, u.Title, u.Key, pages.Topic(u))
}

// APIList returns every topic key and title in registration order.
func (h *TopicHandler) APIList(c echo.Context) error {
	return c.JSON(http.StatusOK, NewTopicListResponse(h.toc))
}

// APIGet returns one topic as JSON, or its raw payload with ?format=raw.
func (h *TopicHandler) APIGet(c echo.Context) error {
	var req TopicRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "validation_failed", Message: err.Error()})
	}
	req.Key = routeKey(c, req.Key)

	u, err := h.catalog.Lookup(req.Key)
	if err != nil {
		if catalog.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Code: string(catalog.ErrorNotFound), Message: err.Error()})
		}
		return err
	}

	if req.Format == "raw" {
		return c.HTMLBlob(http.StatusOK, []byte(u.Payload))
	}
	return c.JSON(http.StatusOK, NewTopicResponse(u))
}

func (h *TopicHandler) page(c echo.Context, status int, title, activeKey string, content g.Node) error {
	return h.renderer.RenderPage(c, status, layouts.Base(h.appName, title, h.toc, activeKey, content))
}

// isHTMX reports whether the request wants the topic fragment only. A history
// restore is swapped into <body> and needs the whole page.
func isHTMX(c echo.Context) bool {
	hdr := c.Request().Header
	return hdr.Get("HX-Request") == "true" && hdr.Get("HX-History-Restore-Request") != "true"
}

// routeKey turns a path param back into a catalog key. Echo routes on the
// escaped path whenever one exists, so the param then arrives still escaped.
func routeKey(c echo.Context, param string) string {
	if c.Request().URL.RawPath == "" {
		return param
	}
	key, err := url.PathUnescape(param)
	if err != nil {
		return param
	}
	return key
}
