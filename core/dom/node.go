package dom

import (
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node.
func NewElement(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag.String(),
		DataAtom: tag,
		Attr:     attrs,
	}
}

// Detach unlinks n from its parent, if any, and returns it.
func Detach(n *html.Node) *html.Node {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return n
}

// RemoveAttrs deletes the attributes named keys from every node, keeping
// the remaining attributes in their original order.
func RemoveAttrs(nodes []*html.Node, keys ...string) {
	for _, n := range nodes {
		n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
			return a.Namespace == "" && slices.Contains(keys, a.Key)
		})
	}
}
