package mock

import "github.com/gaurav-prasanna/wikibook/core"

var (
	_ core.Renderer   = (*Renderer)(nil)
	_ core.Normalizer = (*Normalizer)(nil)
)

// Renderer is a mock implementation of core.Renderer.
type Renderer struct {
	RenderFn    func(book core.Book) ([]byte, error)
	ExtensionFn func() string
}

func (r *Renderer) Render(book core.Book) ([]byte, error) {
	return r.RenderFn(book)
}

func (r *Renderer) Extension() string {
	return r.ExtensionFn()
}

// Normalizer is a mock implementation of core.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string) (string, error)
}

func (n *Normalizer) Normalize(html string) (string, error) {
	return n.NormalizeFn(html)
}
