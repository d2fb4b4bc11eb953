// Package render: Markdown renderer.
// Converts every cleaned page to Markdown and joins them with a rule.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
)

// MarkdownRenderer writes the book as one Markdown file. The stylesheet has
// no Markdown equivalent and is dropped.
type MarkdownRenderer struct {
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer converting pages with n.
func NewMarkdownRenderer(n core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: n}
}

// Render converts each page and separates them with a horizontal rule.
func (r *MarkdownRenderer) Render(book core.Book) ([]byte, error) {
	parts := make([]string, 0, len(book.Pages))
	for _, p := range book.Pages {
		md, err := r.normalizer.Normalize(p.HTML)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", p.URL, err)
		}
		parts = append(parts, md)
	}
	return []byte(strings.Join(parts, "\n\n---\n\n") + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
