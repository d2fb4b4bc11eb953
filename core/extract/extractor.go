// Package extract implements the Extractor interface.
// It parses a fetched article into a document and locates the pieces the
// rest of the pipeline needs:
//  1. the content region, the single container the cleaner works on
//  2. the article title, used by the non-HTML renderers
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/dom"
)

// HTMLExtractor parses raw article HTML.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses html into a document.
func (e *HTMLExtractor) Extract(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, core.Wrap(core.KindParse, "", fmt.Errorf("parsing HTML: %w", err))
	}
	return doc, nil
}

// Region returns the content region of doc, the element whose id is
// contentID. It fails with a parse error when the page has none.
func Region(doc *goquery.Document, contentID string) (*goquery.Selection, error) {
	region, ok := dom.ByID(doc.Selection, contentID)
	if !ok {
		var resource string
		if doc.Url != nil {
			resource = doc.Url.String()
		}
		return nil, core.Errorf(core.KindParse, resource, "no #%s content region", contentID)
	}
	return region, nil
}

// titleSelectors are tried in order; the first non-empty text wins.
var titleSelectors = []string{"#firstHeading", "h1", "title"}

// Title returns the article title of doc, or "" if none is found.
func Title(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
