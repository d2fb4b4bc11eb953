package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/dom"
)

// presentationAttrs are dropped from every node of the region.
var presentationAttrs = []string{"style", "align"}

// StripAttributes removes presentation-only attributes from region and all
// of its descendants, then clears style on every thumb container.
func StripAttributes(region *goquery.Selection, thumbs *dom.Query) {
	dom.RemoveAttrs(region.Find("*").AddBack().Nodes, presentationAttrs...)

	// Thumb containers never keep a style.
	dom.RemoveAttrs(thumbs.Find(region).Nodes, "style")
}
