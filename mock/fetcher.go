package mock

import (
	"context"

	"github.com/gaurav-prasanna/wikibook/core"
)

var (
	_ core.Fetcher     = (*Fetcher)(nil)
	_ core.ByteFetcher = (*ByteFetcher)(nil)
)

// Fetcher is a mock implementation of core.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*core.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

// ByteFetcher is a mock implementation of core.ByteFetcher.
type ByteFetcher struct {
	FetchBytesFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ByteFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return f.FetchBytesFn(ctx, url)
}
