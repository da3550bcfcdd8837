package service

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

// renderMarkdown renders markdown content to HTML for markdown posts.
// editorjs posts keep an empty render; the client renders blocks itself.
func renderMarkdown(md string) string {
	if md == "" {
		return ""
	}

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})

	return string(markdown.ToHTML([]byte(md), nil, renderer))
}
