package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dasdy/spookydraw/model"
	cs "github.com/dasdy/spookydraw/web/components"
)

// ToolState is the tool currently selected in the editor.
type ToolState struct {
	current   model.Tool
	stateLock sync.RWMutex
}

func NewToolState(initial model.Tool) *ToolState {
	return &ToolState{current: initial}
}

func (ts *ToolState) Current() model.Tool {
	ts.stateLock.RLock()
	defer ts.stateLock.RUnlock()

	return ts.current
}

func (ts *ToolState) Select(tool model.Tool) {
	ts.stateLock.Lock()
	defer ts.stateLock.Unlock()

	ts.current = tool
}

// ToolDescriptors describes the toolbar for the current state. It is rebuilt
// for every request so the toolbar is always rendered from fresh state.
func (s *ServerHandler) ToolDescriptors() []cs.ToolDescriptor {
	return s.toolDescriptors(func(tool model.Tool) {
		if err := s.selectTool(tool); err != nil {
			slog.Error("Failed to select tool", "tool", tool, "error", err)
		}
	})
}

func (s *ServerHandler) toolDescriptors(onSelect func(model.Tool)) []cs.ToolDescriptor {
	current := s.Tools.Current()
	tools := model.AllTools()
	result := make([]cs.ToolDescriptor, 0, len(tools))

	for _, tool := range tools {
		result = append(result, cs.ToolDescriptor{
			ID:       tool.String(),
			Icon:     cs.ToolIcon(tool),
			Label:    tool.Label(),
			Active:   tool == current,
			Disabled: s.Settings.ToolDisabled(tool),
			OnClick:  func() { onSelect(tool) },
		})
	}

	return result
}

// selectTool switches the tool only once the activation has been stored.
func (s *ServerHandler) selectTool(tool model.Tool) error {
	err := s.Storage.StoreToolEvent(&model.ToolEvent{Tool: tool, Timestamp: time.Now()})
	if err != nil {
		return fmt.Errorf("could not record %s: %w", tool, err)
	}

	s.Tools.Select(tool)

	if s.Tracker != nil {
		s.Tracker.HandleToolNow(tool, s.Verbose)
	}

	return nil
}

// ActivateHandle handles a toolbar form submission.
func (s *ServerHandler) ActivateHandle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	id := r.PostForm.Get(cs.ToolFormField)
	if id == "" {
		http.Error(w, "missing tool", http.StatusBadRequest)

		return
	}

	tool, err := model.ParseTool(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)

		return
	}

	var selectErr error

	tools := s.toolDescriptors(func(t model.Tool) { selectErr = s.selectTool(t) })
	if !cs.Activate(tools, id) {
		slog.WarnContext(r.Context(), "Tool activation rejected", "tool", tool)
		http.Error(w, "tool "+id+" is not available", http.StatusConflict)

		return
	}

	if selectErr != nil {
		slog.ErrorContext(r.Context(), "Failed to select tool", "tool", tool, "error", selectErr)
		http.Error(w, selectErr.Error(), http.StatusInternalServerError)

		return
	}

	slog.InfoContext(r.Context(), "Tool selected", "tool", tool)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
