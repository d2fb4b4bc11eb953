package mock

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core"
)

var _ core.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of core.Cleaner.
type Cleaner struct {
	CleanFn func(ctx context.Context, doc *goquery.Document) (string, error)
}

func (c *Cleaner) Clean(ctx context.Context, doc *goquery.Document) (string, error) {
	return c.CleanFn(ctx, doc)
}
