package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/dom"
	"golang.org/x/net/html/atom"
)

// NeutralizeLinks turns every anchor of region into a span without a
// target. Children and the remaining attributes are kept.
func NeutralizeLinks(region *goquery.Selection) int {
	links := region.Find("a")
	for _, n := range links.Nodes {
		n.Data = atom.Span.String()
		n.DataAtom = atom.Span
	}
	dom.RemoveAttrs(links.Nodes, "href")
	return links.Length()
}
