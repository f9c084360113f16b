package db

import (
	"iter"

	"github.com/dasdy/spookydraw/model"
)

// Tracker keeps derived tool statistics up to date as tools get activated.
type Tracker interface {
	HandleToolNow(tool model.Tool, verbose bool)
	GatherTransitions(from model.Tool) []model.ToolTransition
	AllTransitions() []model.ToolTransition
}

type Storage interface {
	StoreToolEvent(event *model.ToolEvent) error
	GatherToolUsage() ([]model.ToolUsage, error)
	ToolEventIterator() (iter.Seq[model.ToolEvent], error)

	SaveUser(user *model.User) error
	SaveDrawing(drawing *model.Drawing) error
	CountDrawingsByAuthor(authorID string) (int, error)
	GetDrawing(id string) (*model.Drawing, error)
	ListDrawings(publicOnly bool, limit int) ([]model.Drawing, error)
	TopDrawings(limit int) ([]model.Drawing, error)
	DailyDrawings(days int) ([]model.DailyCount, error)
	GatherStats() (model.Stats, error)

	Close()
}
