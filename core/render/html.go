// Package render provides output renderers for compiled books.
// This file implements the HTML renderer, the default output: the cleaned
// fragments concatenated in list order, followed by one style block.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
)

// HTMLRenderer writes the book as a single HTML document.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render concatenates the page fragments and appends the book style.
func (r *HTMLRenderer) Render(book core.Book) ([]byte, error) {
	var b strings.Builder
	for _, p := range book.Pages {
		b.WriteString(p.HTML)
	}
	b.WriteString(book.Style)
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
