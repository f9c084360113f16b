package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/model"
	cs "github.com/dasdy/spookydraw/web/components"
)

// BuildStatsRenderContext builds the render context for the stats page.
func (s *ServerHandler) BuildStatsRenderContext(analytics model.AnalyticsData) cs.StatsContext {
	maxVal := 0

	for _, u := range analytics.ToolUsage {
		if maxVal < u.Count {
			maxVal = u.Count
		}
	}

	return cs.StatsContext{
		PageContext: s.pageContext(cs.PageTypeStats),
		Analytics:   analytics,
		MaxUsage:    maxVal,
	}
}

// StatsHandle handles requests to the stats page.
func (s *ServerHandler) StatsHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling stats page request")

	analytics, err := db.BuildAnalytics(s.Storage, s.Tracker, db.DefaultTopDrawings, db.DefaultDailyWindow)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to get stats", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.DebugContext(r.Context(), "Gathered analytics")

	renderContext := s.BuildStatsRenderContext(analytics)
	s.render(w, r, cs.StatsPage(&renderContext))
}
