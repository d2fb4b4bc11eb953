package clean

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/dom"
)

// PruneDeadNodes removes every subtree of region matched by blocked and
// returns how many matches were removed. Nested matches are counted but go
// away with their ancestor.
func PruneDeadNodes(region *goquery.Selection, blocked *dom.Query) int {
	dead := blocked.Find(region)
	dead.Remove()
	return dead.Length()
}
