package routes_test

import (
	"fmt"
	"iter"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/routes"
)

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	ReturnUsage    []model.ToolUsage
	ReturnDrawings []model.Drawing
	ReturnStats    model.Stats
	ReturnError    error
	StoreError     error
	ReturnDrawing  *model.Drawing
	StoredEvents   []model.ToolEvent
	ListCallCount  int
}

func (m *SimpleStorageMock) StoreToolEvent(event *model.ToolEvent) error {
	if m.StoreError != nil {
		return m.StoreError
	}

	m.StoredEvents = append(m.StoredEvents, *event)

	return nil
}

func (m *SimpleStorageMock) GatherToolUsage() ([]model.ToolUsage, error) {
	return m.ReturnUsage, m.ReturnError
}

func (m *SimpleStorageMock) ToolEventIterator() (iter.Seq[model.ToolEvent], error) {
	// Empty iterator - no events to yield
	return func(_ func(model.ToolEvent) bool) {}, nil
}

func (m *SimpleStorageMock) SaveUser(_ *model.User) error {
	return nil
}

func (m *SimpleStorageMock) SaveDrawing(_ *model.Drawing) error {
	return nil
}

func (m *SimpleStorageMock) CountDrawingsByAuthor(_ string) (int, error) {
	return 0, nil
}

func (m *SimpleStorageMock) GetDrawing(id string) (*model.Drawing, error) {
	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	if m.ReturnDrawing == nil || m.ReturnDrawing.ID != id {
		return nil, fmt.Errorf("drawing %s: %w", id, db.ErrNotFound)
	}

	return m.ReturnDrawing, nil
}

func (m *SimpleStorageMock) ListDrawings(_ bool, _ int) ([]model.Drawing, error) {
	m.ListCallCount++

	return m.ReturnDrawings, m.ReturnError
}

func (m *SimpleStorageMock) TopDrawings(_ int) ([]model.Drawing, error) {
	return m.ReturnDrawings, m.ReturnError
}

func (m *SimpleStorageMock) DailyDrawings(_ int) ([]model.DailyCount, error) {
	return []model.DailyCount{}, m.ReturnError
}

func (m *SimpleStorageMock) GatherStats() (model.Stats, error) {
	return m.ReturnStats, m.ReturnError
}

// Implement Close method required by db.Storage interface
func (m *SimpleStorageMock) Close() {
	// No-op for testing
}

// TrackerMock is a simple mock implementation of the Tracker interface
type TrackerMock struct {
	Handled           []model.Tool
	ReturnTransitions []model.ToolTransition
}

func (m *TrackerMock) HandleToolNow(tool model.Tool, _ bool) {
	m.Handled = append(m.Handled, tool)
}

func (m *TrackerMock) GatherTransitions(_ model.Tool) []model.ToolTransition {
	return m.ReturnTransitions
}

func (m *TrackerMock) AllTransitions() []model.ToolTransition {
	return m.ReturnTransitions
}

// MockServerHandler helper struct for testing
type MockServerHandler struct {
	routes.ServerHandler
	MockStorage *SimpleStorageMock
	MockTracker *TrackerMock
}

// setupMockServerHandler creates a mock server handler with fill disabled and brush selected.
func setupMockServerHandler() MockServerHandler {
	mockStorage := &SimpleStorageMock{}
	mockTracker := &TrackerMock{}

	settings := model.DefaultSettings()
	settings.DisabledTools = []model.Tool{model.ToolFill}

	return MockServerHandler{
		ServerHandler: routes.ServerHandler{
			Storage:  mockStorage,
			Tracker:  mockTracker,
			Settings: &settings,
			Tools:    routes.NewToolState(settings.DefaultTool),
		},
		MockStorage: mockStorage,
		MockTracker: mockTracker,
	}
}
