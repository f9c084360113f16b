package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/model"
	cs "github.com/dasdy/spookydraw/web/components"
)

const ActivateURL = "/tools/activate"

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Storage  db.Storage
	Tracker  db.Tracker
	Settings *model.AppSettings
	Tools    *ToolState
	Verbose  bool
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func (s *ServerHandler) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if err := SafeRenderTemplate(r.Context(), component, w); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *ServerHandler) pageContext(page cs.PageType) cs.PageContext {
	return cs.PageContext{
		SiteName: s.Settings.SiteName,
		Theme:    s.Settings.Theme,
		Page:     page,
	}
}
