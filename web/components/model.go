package components

import (
	"github.com/a-h/templ"
	"github.com/dasdy/spookydraw/model"
)

type PageType string

const (
	PageTypeEditor  PageType = "editor"
	PageTypeGallery PageType = "gallery"
	PageTypeStats   PageType = "stats"
)

// ToolDescriptor is one button of the toolbar.
//
// ID is the render identity of the button and the value submitted on
// activation. Icon is an opaque render unit supplied by the caller and may be
// nil. Several descriptors may be Active at the same time, the toolbar renders
// each of them independently.
type ToolDescriptor struct {
	Icon     templ.Component
	OnClick  func()
	ID       string
	Label    string
	Active   bool
	Disabled bool
}

// PageContext is shared by every full page.
type PageContext struct {
	SiteName string
	Theme    string
	Page     PageType
}

type EditorContext struct {
	PageContext
	Tools       []ToolDescriptor
	CurrentTool model.Tool
	ActivateURL string
	// NextTools are the switches most often made away from CurrentTool.
	NextTools []model.ToolTransition
}

type GalleryItem struct {
	Drawing     model.Drawing
	AuthorColor string
}

type GalleryContext struct {
	PageContext
	Items []GalleryItem
}

type DrawingContext struct {
	PageContext
	Item GalleryItem
}

type StatsContext struct {
	PageContext
	Analytics model.AnalyticsData
	// MaxUsage is the largest tool usage count, used to scale the bars.
	MaxUsage int
}
