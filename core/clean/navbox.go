package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FlattenNavboxes lifts the images out of every navbox of region and drops
// the box. Each image gets its own thumb wrapper, prepended to the box's
// parent, so the images end up in reverse of their order inside the box.
// It returns the number of images moved.
func FlattenNavboxes(region *goquery.Selection, navboxes *dom.Query, thumbClass string) int {
	moved := 0
	navboxes.Find(region).Each(func(_ int, box *goquery.Selection) {
		parent := box.Parent()
		if parent.Length() == 0 {
			return
		}

		for _, img := range box.Find("img").Nodes {
			wrapper := dom.NewElement(atom.Div, html.Attribute{Key: "class", Val: thumbClass})
			wrapper.AppendChild(dom.Detach(img))
			parent.PrependNodes(wrapper)
			moved++
		}

		box.Remove()
	})
	return moved
}
