package components

import (
	"github.com/a-h/templ"
	"github.com/dasdy/spookydraw/model"
)

var toolGlyphs = map[model.Tool]string{
	model.ToolBrush:      "🖌️",
	model.ToolEraser:     "🧽",
	model.ToolLine:       "╱",
	model.ToolCircle:     "◯",
	model.ToolRectangle:  "▭",
	model.ToolGhost:      "👻",
	model.ToolPumpkin:    "🎃",
	model.ToolFill:       "🪣",
	model.ToolEyedropper: "💧",
	model.ToolSpray:      "💨",
}

// ToolIcon returns the glyph icon of a tool, or nil for tools without one.
func ToolIcon(t model.Tool) templ.Component {
	glyph, ok := toolGlyphs[t]
	if !ok {
		return nil
	}

	return glyphIcon(glyph)
}
