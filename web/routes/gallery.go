package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/gallery"
	"github.com/dasdy/spookydraw/model"
	cs "github.com/dasdy/spookydraw/web/components"
)

const galleryPageSize = 60

// BuildGalleryRenderContext builds the render context for the gallery page.
func (s *ServerHandler) BuildGalleryRenderContext(drawings []model.Drawing) cs.GalleryContext {
	items := make([]cs.GalleryItem, 0, len(drawings))

	for _, d := range drawings {
		items = append(items, galleryItem(d))
	}

	return cs.GalleryContext{
		PageContext: s.pageContext(cs.PageTypeGallery),
		Items:       items,
	}
}

func galleryItem(d model.Drawing) cs.GalleryItem {
	return cs.GalleryItem{
		Drawing:     d,
		AuthorColor: gallery.ColorForUser(d.AuthorName),
	}
}

// GalleryHandle handles requests to the gallery page.
func (s *ServerHandler) GalleryHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling gallery page request")

	drawings, err := s.Storage.ListDrawings(true, galleryPageSize)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list drawings", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	renderContext := s.BuildGalleryRenderContext(drawings)
	s.render(w, r, cs.GalleryPage(&renderContext))
}

// DrawingHandle shows a single public drawing. Private and missing drawings
// are both answered with 404.
func (s *ServerHandler) DrawingHandle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	drawing, err := s.Storage.GetDrawing(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && !drawing.IsPublic) {
		http.NotFound(w, r)

		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load drawing", "id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	renderContext := cs.DrawingContext{
		PageContext: s.pageContext(cs.PageTypeGallery),
		Item:        galleryItem(*drawing),
	}
	s.render(w, r, cs.DrawingPage(&renderContext))
}
