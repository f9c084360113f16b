package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/components"
	"github.com/dasdy/spookydraw/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEditorRenderContext(t *testing.T) {
	handler := setupMockServerHandler()
	handler.Tools.Select(model.ToolSpray)

	result := handler.BuildEditorRenderContext()

	assert.Equal(t, components.PageTypeEditor, result.Page)
	assert.Equal(t, "Spooky Draw", result.SiteName)
	assert.Equal(t, model.ToolSpray, result.CurrentTool)
	assert.Equal(t, routes.ActivateURL, result.ActivateURL)
	assert.Len(t, result.Tools, len(model.AllTools()))
	assert.Empty(t, result.NextTools)

	t.Run("next tools come from the tracker", func(t *testing.T) {
		handler.MockTracker.ReturnTransitions = []model.ToolTransition{
			{From: model.ToolSpray, To: model.ToolBrush, Count: 9},
			{From: model.ToolSpray, To: model.ToolGhost, Count: 5},
			{From: model.ToolSpray, To: model.ToolFill, Count: 3},
			{From: model.ToolSpray, To: model.ToolLine, Count: 1},
		}

		result := handler.BuildEditorRenderContext()

		require.Len(t, result.NextTools, 3)
		assert.Equal(t, model.ToolBrush, result.NextTools[0].To)
		assert.Equal(t, model.ToolFill, result.NextTools[2].To)
	})
}

func TestEditorHandle(t *testing.T) {
	handler := setupMockServerHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.EditorHandle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `role="toolbar"`)
	assert.Contains(t, w.Body.String(), `data-tool-id="pumpkin"`)
	assert.Empty(t, handler.MockStorage.StoredEvents, "rendering must not activate tools")
}
