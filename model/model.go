package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownTool = errors.New("unknown tool")

// Tool is one of the drawing tools known to the editor.
type Tool string

const (
	ToolBrush      Tool = "brush"
	ToolEraser     Tool = "eraser"
	ToolLine       Tool = "line"
	ToolCircle     Tool = "circle"
	ToolRectangle  Tool = "rectangle"
	ToolGhost      Tool = "ghost"
	ToolPumpkin    Tool = "pumpkin"
	ToolFill       Tool = "fill"
	ToolEyedropper Tool = "eyedropper"
	ToolSpray      Tool = "spray"
)

var allTools = []Tool{
	ToolBrush,
	ToolEraser,
	ToolLine,
	ToolCircle,
	ToolRectangle,
	ToolGhost,
	ToolPumpkin,
	ToolFill,
	ToolEyedropper,
	ToolSpray,
}

var toolLabels = map[Tool]string{
	ToolBrush:      "Brush",
	ToolEraser:     "Eraser",
	ToolLine:       "Line",
	ToolCircle:     "Circle",
	ToolRectangle:  "Rectangle",
	ToolGhost:      "Ghost",
	ToolPumpkin:    "Pumpkin",
	ToolFill:       "Fill",
	ToolEyedropper: "Eyedropper",
	ToolSpray:      "Spray",
}

// AllTools returns every tool in declaration order. The slice is a copy.
func AllTools() []Tool {
	result := make([]Tool, len(allTools))
	copy(result, allTools)

	return result
}

func ParseTool(name string) (Tool, error) {
	t := Tool(name)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	return t, nil
}

func (t Tool) Valid() bool {
	_, ok := toolLabels[t]

	return ok
}

// Label is the human readable name of the tool, used for tooltips.
func (t Tool) Label() string {
	if l, ok := toolLabels[t]; ok {
		return l
	}

	return string(t)
}

func (t Tool) String() string {
	return string(t)
}

type User struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"          validate:"required,max=64"`
	Username    string    `json:"username"    validate:"required,min=2,max=32"`
	Email       string    `json:"email"       validate:"omitempty,email,max=254"`
	AvatarColor string    `json:"avatarColor" validate:"omitempty,hexcolor"`
	IsAdmin     bool      `json:"isAdmin"`
}

type Drawing struct {
	CreatedAt  time.Time `json:"createdAt"`
	ID         string    `json:"id"         validate:"omitempty,max=64"`
	Title      string    `json:"title"      validate:"required,max=120"`
	AuthorID   string    `json:"authorId"   validate:"required,max=64"`
	AuthorName string    `json:"authorName" validate:"max=32"`
	ImageData  string    `json:"imageData"  validate:"required,datauri"`
	Tags       []string  `json:"tags"       validate:"max=10,dive,max=24"`
	Likes      int       `json:"likes"      validate:"gte=0"`
	Views      int       `json:"views"      validate:"gte=0"`
	IsPublic   bool      `json:"isPublic"`
}

type Stats struct {
	TotalDrawings int
	TotalUsers    int
	TotalLikes    int
	TotalViews    int
}

// ToolEvent is a single activation of a tool in the editor.
type ToolEvent struct {
	Timestamp time.Time
	Tool      Tool
}

type ToolUsage struct {
	Tool  Tool
	Count int
}

// ToolTransition counts how often the editor switched from one tool to another.
type ToolTransition struct {
	From  Tool
	To    Tool
	Count int
}

type DailyCount struct {
	Day   time.Time
	Count int
}

type AnalyticsData struct {
	Stats         Stats
	ToolUsage     []ToolUsage
	Transitions   []ToolTransition
	TopDrawings   []Drawing
	DailyDrawings []DailyCount
}

type AppSettings struct {
	SiteName           string `mapstructure:"sitename"           validate:"required,max=64"`
	Theme              string `mapstructure:"theme"              validate:"oneof=halloween light dark"`
	DefaultTool        Tool   `mapstructure:"defaulttool"        validate:"required"`
	DisabledTools      []Tool `mapstructure:"disabledtools"`
	AllowAnonymous     bool   `mapstructure:"allowanonymous"`
	MaxDrawingsPerUser int    `mapstructure:"maxdrawingsperuser" validate:"gte=0"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		SiteName:           "Spooky Draw",
		Theme:              "halloween",
		DefaultTool:        ToolBrush,
		AllowAnonymous:     true,
		MaxDrawingsPerUser: 0,
	}
}

// ToolDisabled reports whether settings switch the tool off.
func (s *AppSettings) ToolDisabled(t Tool) bool {
	for _, d := range s.DisabledTools {
		if d == t {
			return true
		}
	}

	return false
}
