package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/dom"
)

// TruncateFootnotes cuts the article at its first trailing section.
// The ids are probed in order; the first anchor found identifies the
// enclosing heading, which is removed together with every element that
// follows it. Only that first match is acted on. It returns the id that
// caused the cut, or false if the region was left intact.
func TruncateFootnotes(region *goquery.Selection, ids []string) (string, bool) {
	for _, id := range ids {
		anchor, ok := dom.ByID(region, id)
		if !ok {
			continue
		}

		heading := anchor.Parent()
		// An anchor sitting directly under the region has no heading of its own.
		if heading.Length() == 0 || heading.IsSelection(region) {
			continue
		}

		// NextAll snapshots the siblings before anything is detached.
		heading.NextAll().Remove()
		heading.Remove()
		return id, true
	}
	return "", false
}
