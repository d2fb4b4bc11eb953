// Package dom locates nodes inside a parsed page.
// Selector lists are compiled once with cascadia and evaluated as a union,
// so a query over many rules walks the tree a single time.
package dom

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Query is a compiled union of CSS selectors.
type Query struct {
	group   cascadia.SelectorGroup
	matcher cascadia.Selector
}

// Compile parses each selector (tag names, .class, #id or any other CSS
// selector) into a single union query.
func Compile(selectors ...string) (*Query, error) {
	group := make(cascadia.SelectorGroup, 0, len(selectors))
	for _, s := range selectors {
		sel, err := cascadia.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parsing selector %q: %w", s, err)
		}
		group = append(group, sel)
	}
	return &Query{group: group, matcher: cascadia.Selector(group.Match)}, nil
}

// MustCompile is like Compile but panics on an invalid selector.
// Use it only for static rule tables.
func MustCompile(selectors ...string) *Query {
	q, err := Compile(selectors...)
	if err != nil {
		panic(err)
	}
	return q
}

// Find returns every descendant of root matching any selector of the query,
// in document order and without duplicates.
func (q *Query) Find(root *goquery.Selection) *goquery.Selection {
	if len(q.group) == 0 {
		return root.FindNodes()
	}
	return root.FindMatcher(q.matcher)
}

// Match compiles selectors and returns the matching descendants of root.
func Match(root *goquery.Selection, selectors ...string) (*goquery.Selection, error) {
	q, err := Compile(selectors...)
	if err != nil {
		return nil, err
	}
	return q.Find(root), nil
}

// ByID returns the first descendant of root whose id attribute is exactly id.
// The attribute is compared directly, so ids that are not valid CSS
// identifiers (leading digits, punctuation) still match.
func ByID(root *goquery.Selection, id string) (*goquery.Selection, bool) {
	var found *goquery.Selection
	root.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}
