package components

import (
	"net/url"
	"strings"
)

var navPages = []PageType{PageTypeEditor, PageTypeGallery, PageTypeStats}

// getLinkForPage returns the URL of a top level page.
func getLinkForPage(page PageType) string {
	switch page {
	case PageTypeGallery:
		return "/gallery"
	case PageTypeStats:
		return "/stats"
	case PageTypeEditor:
		return "/"
	default:
		return "/"
	}
}

// getPageTitle returns the navigation label of a page.
func getPageTitle(page PageType) string {
	switch page {
	case PageTypeEditor:
		return "Draw"
	case PageTypeGallery:
		return "Gallery"
	case PageTypeStats:
		return "Stats"
	default:
		return ""
	}
}

func getDrawingLink(id string) string {
	return "/drawings/" + url.PathEscape(id)
}

func fallbackIconText(label string) string {
	for _, r := range label {
		return strings.ToUpper(string(r))
	}

	return "?"
}

func usagePercent(count, maxVal int) int {
	if maxVal <= 0 {
		return 0
	}

	return count * 100 / maxVal
}
