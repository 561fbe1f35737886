package main

import (
	"os"

	markdown "github.com/MichaelMure/go-term-markdown"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/term"
)

// renderMarkdown renders a report for terminal display, sized to the
// terminal width. Falls back to the raw text when stdout is not a terminal.
func renderMarkdown(content string) string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return content
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}

	// Keep plain URLs as plain text; terminal emulators handle clickability
	customExt := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(customExt)
	r := markdown.NewRenderer(width-4, 0)
	doc := p.Parse([]byte(content))

	return string(gomarkdown.Render(doc, r))
}
