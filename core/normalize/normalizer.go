// Package normalize implements the Normalizer interface.
// It converts a cleaned article fragment into Markdown for the
// non-HTML renderers.
package normalize

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gaurav-prasanna/wikibook/core"
)

var _ core.Normalizer = (*MarkdownNormalizer)(nil)

// MarkdownNormalizer converts article HTML to CommonMark with tables kept
// as pipe tables.
type MarkdownNormalizer struct {
	conv *converter.Converter
}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &MarkdownNormalizer{conv: conv}
}

// Normalize converts a cleaned HTML fragment into Markdown. Neutralized
// links are plain spans by now, so the result carries no link targets;
// local image references are kept.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := n.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
