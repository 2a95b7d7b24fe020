package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderAboutHTML converts the embedded about.md to HTML once, at app
// construction, so a broken embed fails NewApp instead of a request.
func renderAboutHTML() (template.HTML, error) {
	src, err := embeddedFiles.ReadFile("about.md")
	if err != nil {
		return "", fmt.Errorf("failed to read about.md: %w", err)
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML(src, p, renderer)), nil
}

func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "about.html", map[string]interface{}{
		"Content": a.about,
	})
}
