package components_test

import (
	"testing"
	"time"

	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorPage(t *testing.T) {
	page := components.EditorContext{
		PageContext: components.PageContext{SiteName: "Spooky Draw", Theme: "halloween", Page: components.PageTypeEditor},
		Tools: []components.ToolDescriptor{
			{ID: "brush", Label: "Brush", Active: true},
			{ID: "fill", Label: "Fill", Disabled: true},
		},
		CurrentTool: model.ToolBrush,
		ActivateURL: "/tools/activate",
	}

	doc := parse(t, render(t, components.EditorPage(&page)))

	forms := findAll(doc, "form")
	require.Len(t, forms, 1)

	action, _ := attr(forms[0], "action")
	method, _ := attr(forms[0], "method")

	assert.Equal(t, "/tools/activate", action)
	assert.Equal(t, "post", method)
	assert.Len(t, findAll(forms[0], "button"), 2)

	canvases := findAll(doc, "canvas")
	require.Len(t, canvases, 1)

	tool, _ := attr(canvases[0], "data-tool")
	assert.Equal(t, "brush", tool)

	titles := findAll(doc, "title")
	require.Len(t, titles, 1)
	assert.Equal(t, "Spooky Draw - Draw", titles[0].FirstChild.Data)

	assert.NotContains(t, render(t, components.EditorPage(&page)), "Usually followed by")

	t.Run("shows the usual next tools", func(t *testing.T) {
		page.NextTools = []model.ToolTransition{
			{From: model.ToolBrush, To: model.ToolEraser, Count: 4},
			{From: model.ToolBrush, To: model.ToolGhost, Count: 1},
		}

		doc := parse(t, render(t, components.EditorPage(&page)))

		var next []string

		for _, span := range findAll(doc, "span") {
			if v, ok := attr(span, "data-next-tool"); ok {
				next = append(next, v)
			}
		}

		assert.Equal(t, []string{"eraser", "ghost"}, next)
	})
}

func TestLayout_MarksCurrentPage(t *testing.T) {
	page := components.GalleryContext{
		PageContext: components.PageContext{SiteName: "Spooky Draw", Page: components.PageTypeGallery},
	}

	doc := parse(t, render(t, components.GalleryPage(&page)))

	var current []string

	for _, a := range findAll(doc, "a") {
		if v, ok := attr(a, "aria-current"); ok && v == "page" {
			href, _ := attr(a, "href")
			current = append(current, href)
		}
	}

	assert.Equal(t, []string{"/gallery"}, current)
}

func TestGalleryPage(t *testing.T) {
	t.Run("empty gallery", func(t *testing.T) {
		page := components.GalleryContext{PageContext: components.PageContext{Page: components.PageTypeGallery}}

		assert.Contains(t, render(t, components.GalleryPage(&page)), "No drawings yet.")
	})

	t.Run("renders drawings in order", func(t *testing.T) {
		page := components.GalleryContext{
			PageContext: components.PageContext{Page: components.PageTypeGallery},
			Items: []components.GalleryItem{
				{Drawing: model.Drawing{ID: "d2", Title: "Bat", ImageData: "data:image/png;base64,AA=="}, AuthorColor: "#ff0000"},
				{Drawing: model.Drawing{ID: "d1", Title: "Cat <script>", ImageData: "data:image/png;base64,AA=="}, AuthorColor: "#00ff00"},
			},
		}

		doc := parse(t, render(t, components.GalleryPage(&page)))
		items := findAll(doc, "li")

		require.Len(t, items, 2)

		first, _ := attr(items[0], "data-drawing-id")
		second, _ := attr(items[1], "data-drawing-id")

		assert.Equal(t, "d2", first)
		assert.Equal(t, "d1", second)
		assert.Empty(t, findAll(doc, "script")[1:], "titles must be escaped")

		links := findAll(items[0], "a")
		require.Len(t, links, 1)

		href, _ := attr(links[0], "href")
		assert.Equal(t, "/drawings/d2", href)

		spans := findAll(items[0], "span")
		require.Len(t, spans, 1)

		style, _ := attr(spans[0], "style")
		assert.Equal(t, "background-color: #ff0000;", style)
	})
}

func TestDrawingPage(t *testing.T) {
	page := components.DrawingContext{
		PageContext: components.PageContext{SiteName: "Spooky Draw", Page: components.PageTypeGallery},
		Item: components.GalleryItem{
			Drawing: model.Drawing{
				ID:         "d1",
				Title:      "Bat",
				AuthorName: "casper",
				ImageData:  "data:image/png;base64,AA==",
				Tags:       []string{"night", "wings"},
				Likes:      3,
				Views:      9,
				CreatedAt:  time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC),
			},
			AuthorColor: "#00ff00",
		},
	}

	markup := render(t, components.DrawingPage(&page))
	doc := parse(t, markup)

	headings := findAll(doc, "h1")
	require.Len(t, headings, 1)
	assert.Equal(t, "Bat", headings[0].FirstChild.Data)

	images := findAll(doc, "img")
	require.Len(t, images, 1)

	src, _ := attr(images[0], "src")
	assert.Equal(t, "data:image/png;base64,AA==", src)

	assert.Len(t, findAll(doc, "li"), 2)
	assert.Contains(t, markup, "casper · 3 likes, 9 views")
	assert.Contains(t, markup, "2026-10-02")
}

func TestStatsPage(t *testing.T) {
	page := components.StatsContext{
		PageContext: components.PageContext{Page: components.PageTypeStats},
		Analytics: model.AnalyticsData{
			Stats: model.Stats{TotalDrawings: 3, TotalUsers: 2, TotalLikes: 10, TotalViews: 40},
			ToolUsage: []model.ToolUsage{
				{Tool: model.ToolBrush, Count: 4},
				{Tool: model.ToolGhost, Count: 2},
			},
			Transitions: []model.ToolTransition{{From: model.ToolBrush, To: model.ToolGhost, Count: 2}},
			DailyDrawings: []model.DailyCount{
				{Day: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Count: 3},
			},
		},
		MaxUsage: 4,
	}

	markup := render(t, components.StatsPage(&page))
	doc := parse(t, markup)

	rows := findAll(doc, "tr")
	require.Len(t, rows, 2)

	tool, _ := attr(rows[0], "data-tool")
	assert.Equal(t, "brush", tool)

	bars := findAll(rows[1], "div")
	require.Len(t, bars, 1)

	style, _ := attr(bars[0], "style")
	assert.Equal(t, "width: 50%;", style)

	assert.Contains(t, markup, "Brush → Ghost: 2")
	assert.Contains(t, markup, "2026-10-01: 3")
}
