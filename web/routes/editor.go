package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/spookydraw/model"
	cs "github.com/dasdy/spookydraw/web/components"
)

const nextToolsShown = 3

// BuildEditorRenderContext builds the render context for the editor page.
func (s *ServerHandler) BuildEditorRenderContext() cs.EditorContext {
	current := s.Tools.Current()

	var next []model.ToolTransition
	if s.Tracker != nil {
		next = s.Tracker.GatherTransitions(current)
		if len(next) > nextToolsShown {
			next = next[:nextToolsShown]
		}
	}

	return cs.EditorContext{
		PageContext: s.pageContext(cs.PageTypeEditor),
		Tools:       s.ToolDescriptors(),
		CurrentTool: current,
		ActivateURL: ActivateURL,
		NextTools:   next,
	}
}

// EditorHandle handles requests to the editor page.
func (s *ServerHandler) EditorHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling editor page request")

	renderContext := s.BuildEditorRenderContext()
	s.render(w, r, cs.EditorPage(&renderContext))
}
