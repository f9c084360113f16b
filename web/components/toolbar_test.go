package components_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var result []*html.Node

	for c := range n.Descendants() {
		if c.Type == html.ElementNode && c.Data == tag {
			result = append(result, c)
		}
	}

	return result
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func classList(n *html.Node) []string {
	v, _ := attr(n, "class")

	return strings.Fields(v)
}

func renderButtons(t *testing.T, tools []components.ToolDescriptor) []*html.Node {
	t.Helper()

	return findAll(parse(t, render(t, components.Toolbar(tools))), "button")
}

func failOnClick(t *testing.T) func() {
	t.Helper()

	return func() {
		t.Errorf("callback must not be invoked")
	}
}

func TestToolbar_Renders(t *testing.T) {
	t.Run("empty sequence renders empty container", func(t *testing.T) {
		doc := parse(t, render(t, components.Toolbar(nil)))

		var toolbars []*html.Node

		for _, div := range findAll(doc, "div") {
			if role, _ := attr(div, "role"); role == "toolbar" {
				toolbars = append(toolbars, div)
			}
		}

		require.Len(t, toolbars, 1)
		orientation, _ := attr(toolbars[0], "aria-orientation")
		assert.Equal(t, "vertical", orientation)
		assert.Empty(t, findAll(doc, "button"))
	})

	t.Run("one button per descriptor in input order", func(t *testing.T) {
		tools := make([]components.ToolDescriptor, 0)
		for _, tool := range model.AllTools() {
			tools = append(tools, components.ToolDescriptor{
				ID:    tool.String(),
				Label: tool.Label(),
				Icon:  components.ToolIcon(tool),
			})
		}

		buttons := renderButtons(t, tools)

		require.Len(t, buttons, len(tools))

		for i, b := range buttons {
			id, _ := attr(b, "data-tool-id")
			assert.Equal(t, tools[i].ID, id)
		}
	})

	t.Run("label is tooltip and accessible name", func(t *testing.T) {
		buttons := renderButtons(t, []components.ToolDescriptor{
			{ID: "brush", Label: `Brush <b>"soft"</b>`},
		})

		require.Len(t, buttons, 1)

		title, _ := attr(buttons[0], "title")
		ariaLabel, _ := attr(buttons[0], "aria-label")

		assert.Equal(t, `Brush <b>"soft"</b>`, title)
		assert.Equal(t, title, ariaLabel)
		assert.Empty(t, findAll(buttons[0], "b"), "label must be escaped")
	})
}

func TestToolbar_ActiveStyling(t *testing.T) {
	buttons := renderButtons(t, []components.ToolDescriptor{
		{ID: "brush", Label: "Brush"},
		{ID: "brush", Label: "Brush", Active: true},
	})

	require.Len(t, buttons, 2)

	inactive, active := buttons[0], buttons[1]

	assert.NotEqual(t, classList(inactive), classList(active))
	assert.Contains(t, classList(active), "bg-orange-500")
	assert.NotContains(t, classList(inactive), "bg-orange-500")

	pressed, _ := attr(active, "aria-pressed")
	assert.Equal(t, "true", pressed)

	pressed, _ = attr(inactive, "aria-pressed")
	assert.Equal(t, "false", pressed)
}

func TestToolbar_MultipleActive(t *testing.T) {
	buttons := renderButtons(t, []components.ToolDescriptor{
		{ID: "ghost", Label: "Ghost", Active: true},
		{ID: "pumpkin", Label: "Pumpkin", Active: true},
		{ID: "spray", Label: "Spray"},
	})

	require.Len(t, buttons, 3)
	assert.Contains(t, classList(buttons[0]), "bg-orange-500")
	assert.Contains(t, classList(buttons[1]), "bg-orange-500")
	assert.NotContains(t, classList(buttons[2]), "bg-orange-500")
}

func TestToolbar_DisabledStyling(t *testing.T) {
	for _, active := range []bool{false, true} {
		buttons := renderButtons(t, []components.ToolDescriptor{
			{ID: "fill", Label: "Fill", Disabled: true, Active: active},
		})

		require.Len(t, buttons, 1)
		b := buttons[0]

		_, disabled := attr(b, "disabled")
		assert.True(t, disabled)

		ariaDisabled, _ := attr(b, "aria-disabled")
		assert.Equal(t, "true", ariaDisabled)

		_, hasName := attr(b, "name")
		assert.False(t, hasName, "disabled button must not submit a value")

		assert.Contains(t, classList(b), "opacity-40")
		assert.False(t, slices.ContainsFunc(classList(b), func(c string) bool {
			return strings.Contains(c, "scale-")
		}), "disabled button must not request micro-interactions")
	}
}

func TestToolbar_Feedback(t *testing.T) {
	t.Run("enabled buttons request hover and press feedback", func(t *testing.T) {
		buttons := renderButtons(t, []components.ToolDescriptor{{ID: "line", Label: "Line"}})

		require.Len(t, buttons, 1)
		assert.Contains(t, classList(buttons[0]), "hover:scale-105")
		assert.Contains(t, classList(buttons[0]), "active:scale-95")

		typ, _ := attr(buttons[0], "type")
		assert.Equal(t, "submit", typ)

		value, _ := attr(buttons[0], "value")
		assert.Equal(t, "line", value)
	})

	t.Run("nil styler disables feedback", func(t *testing.T) {
		markup := render(t, components.ToolbarWithFeedback(
			[]components.ToolDescriptor{{ID: "line", Label: "Line"}}, nil))

		assert.NotContains(t, markup, "scale-")
	})

	t.Run("custom styler", func(t *testing.T) {
		markup := render(t, components.ToolbarWithFeedback(
			[]components.ToolDescriptor{{ID: "line", Label: "Line"}},
			components.ScaleFeedback{Percent: 10}))

		assert.Contains(t, markup, "hover:scale-110")
		assert.Contains(t, markup, "active:scale-90")
	})
}

func TestToolbar_Icons(t *testing.T) {
	t.Run("caller icon is rendered inside the button", func(t *testing.T) {
		buttons := renderButtons(t, []components.ToolDescriptor{
			{ID: "ghost", Label: "Ghost", Icon: components.ToolIcon(model.ToolGhost)},
		})

		require.Len(t, buttons, 1)

		var text strings.Builder

		for n := range buttons[0].Descendants() {
			if n.Type == html.TextNode {
				text.WriteString(n.Data)
			}
		}

		assert.Equal(t, "👻", text.String())
	})

	t.Run("missing icon falls back to first letter", func(t *testing.T) {
		buttons := renderButtons(t, []components.ToolDescriptor{{ID: "eraser", Label: "eraser"}})

		require.Len(t, buttons, 1)

		spans := findAll(buttons[0], "span")
		require.Len(t, spans, 1)
		require.NotNil(t, spans[0].FirstChild)
		assert.Equal(t, "E", spans[0].FirstChild.Data)
	})

	t.Run("icon render error propagates", func(t *testing.T) {
		expectedErr := errors.New("broken icon")
		broken := templ.ComponentFunc(func(_ context.Context, _ io.Writer) error {
			return expectedErr
		})

		err := components.Toolbar([]components.ToolDescriptor{{ID: "x", Label: "X", Icon: broken}}).
			Render(context.Background(), io.Discard)

		require.ErrorIs(t, err, expectedErr)
	})
}

func TestToolbar_RenderIsPure(t *testing.T) {
	tools := []components.ToolDescriptor{
		{ID: "brush", Label: "Brush", OnClick: failOnClick(t)},
		{ID: "eraser", Label: "Eraser", Active: true, OnClick: failOnClick(t)},
		{ID: "fill", Label: "Fill", Disabled: true, OnClick: failOnClick(t)},
	}

	first := render(t, components.Toolbar(tools))
	second := render(t, components.Toolbar(tools))

	assert.Equal(t, first, second)
}

func TestActivate(t *testing.T) {
	t.Run("brush eraser fill scenario", func(t *testing.T) {
		calls := map[string]int{}
		tools := []components.ToolDescriptor{
			{ID: "brush", Label: "Brush", OnClick: func() { calls["brush"]++ }},
			{ID: "eraser", Label: "Eraser", Active: true, OnClick: func() { calls["eraser"]++ }},
			{ID: "fill", Label: "Fill", Disabled: true, OnClick: func() { calls["fill"]++ }},
		}

		buttons := renderButtons(t, tools)
		require.Len(t, buttons, 3)
		assert.Contains(t, classList(buttons[1]), "bg-orange-500")

		assert.True(t, components.Activate(tools, "brush"))
		assert.False(t, components.Activate(tools, "fill"))

		assert.Equal(t, map[string]int{"brush": 1}, calls)
	})

	t.Run("disabled never fires regardless of active", func(t *testing.T) {
		for _, active := range []bool{false, true} {
			tools := []components.ToolDescriptor{
				{ID: "spray", Disabled: true, Active: active, OnClick: failOnClick(t)},
			}

			assert.False(t, components.Activate(tools, "spray"))
		}
	})

	t.Run("enabled fires exactly once per activation", func(t *testing.T) {
		count := 0
		tools := []components.ToolDescriptor{{ID: "line", OnClick: func() { count++ }}}

		assert.True(t, components.Activate(tools, "line"))
		assert.Equal(t, 1, count)

		assert.True(t, components.Activate(tools, "line"))
		assert.Equal(t, 2, count)
	})

	t.Run("active enabled tool still fires", func(t *testing.T) {
		count := 0
		tools := []components.ToolDescriptor{{ID: "line", Active: true, OnClick: func() { count++ }}}

		assert.True(t, components.Activate(tools, "line"))
		assert.Equal(t, 1, count)
	})

	t.Run("unknown id and nil callback do nothing", func(t *testing.T) {
		tools := []components.ToolDescriptor{
			{ID: "brush", OnClick: failOnClick(t)},
			{ID: "circle"},
		}

		assert.False(t, components.Activate(tools, "lasso"))
		assert.False(t, components.Activate(tools, "circle"))
		assert.False(t, components.Activate(nil, "brush"))
	})

	t.Run("duplicate ids resolve to the last descriptor", func(t *testing.T) {
		var called string
		tools := []components.ToolDescriptor{
			{ID: "brush", OnClick: func() { called = "first" }},
			{ID: "brush", OnClick: func() { called = "second" }},
		}

		assert.True(t, components.Activate(tools, "brush"))
		assert.Equal(t, "second", called)
	})

	t.Run("disabled duplicate falls back to the enabled one", func(t *testing.T) {
		calls := 0
		tools := []components.ToolDescriptor{
			{ID: "brush", Label: "Brush", OnClick: func() { calls++ }},
			{ID: "brush", Label: "Brush", Disabled: true, OnClick: failOnClick(t)},
		}

		buttons := renderButtons(t, tools)
		require.Len(t, buttons, 2)

		value, _ := attr(buttons[0], "value")
		assert.Equal(t, "brush", value)

		assert.True(t, components.Activate(tools, "brush"))
		assert.Equal(t, 1, calls)
	})

	t.Run("all duplicates disabled", func(t *testing.T) {
		tools := []components.ToolDescriptor{
			{ID: "brush", Disabled: true, OnClick: failOnClick(t)},
			{ID: "brush", Disabled: true, OnClick: failOnClick(t)},
		}

		assert.False(t, components.Activate(tools, "brush"))
	})
}
