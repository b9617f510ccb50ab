package ui

import (
	"strings"

	"compete/internal/logging"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown through glamour, caching by content, width and
// mode. Renderer construction failures fall back to the raw markdown.
type Markdown struct {
	cache *RenderCache
}

// NewMarkdown returns a renderer with its own cache.
func NewMarkdown() *Markdown {
	return &Markdown{cache: NewRenderCache(64)}
}

// Render formats md for a terminal of the given width.
func (m *Markdown) Render(md string, width int, dark bool) string {
	if width < 20 {
		width = 20
	}
	key := ComputeKey(md, width, dark)
	return m.cache.GetOrCompute(key, func() string {
		style := "light"
		if dark {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logging.Get(logging.CategoryUI).Warn("glamour renderer: %v", err)
			return md
		}
		out, err := r.Render(md)
		if err != nil {
			logging.Get(logging.CategoryUI).Warn("glamour render: %v", err)
			return md
		}
		return strings.Trim(out, "\n")
	})
}
