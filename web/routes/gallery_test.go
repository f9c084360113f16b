package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/spookydraw/gallery"
	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGalleryRenderContext(t *testing.T) {
	handler := setupMockServerHandler()

	result := handler.BuildGalleryRenderContext([]model.Drawing{
		{ID: "d1", Title: "Bat", AuthorName: "casper"},
		{ID: "d2", Title: "Cat", AuthorName: "jack"},
	})

	assert.Equal(t, components.PageTypeGallery, result.Page)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "d1", result.Items[0].Drawing.ID)
	assert.Equal(t, gallery.ColorForUser("casper"), result.Items[0].AuthorColor)
}

func TestGalleryHandle(t *testing.T) {
	tests := []struct {
		name           string
		drawings       []model.Drawing
		storageError   error
		expectedStatus int
	}{
		{
			name:           "Success case",
			drawings:       []model.Drawing{{ID: "d1", Title: "Bat", ImageData: "data:image/png;base64,AA=="}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Storage error",
			storageError:   errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()
			handler.MockStorage.ReturnDrawings = tc.drawings
			handler.MockStorage.ReturnError = tc.storageError

			req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
			w := httptest.NewRecorder()

			handler.GalleryHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, 1, handler.MockStorage.ListCallCount, "ListDrawings should be called exactly once")
		})
	}
}

func TestDrawingHandle(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		drawing        *model.Drawing
		storageError   error
		expectedStatus int
	}{
		{
			name:           "public drawing",
			id:             "d1",
			drawing:        &model.Drawing{ID: "d1", Title: "Bat", IsPublic: true, ImageData: "data:image/png;base64,AA=="},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing drawing",
			id:             "nope",
			drawing:        &model.Drawing{ID: "d1", IsPublic: true},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "private drawing is hidden",
			id:             "d1",
			drawing:        &model.Drawing{ID: "d1", Title: "Secret"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "storage error",
			id:             "d1",
			storageError:   errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()
			handler.MockStorage.ReturnDrawing = tc.drawing
			handler.MockStorage.ReturnError = tc.storageError

			req := httptest.NewRequest(http.MethodGet, "/drawings/"+tc.id, nil)
			req.SetPathValue("id", tc.id)

			w := httptest.NewRecorder()

			handler.DrawingHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `data-drawing-id="d1"`)
			}
		})
	}
}
