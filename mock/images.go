package mock

import (
	"context"

	"github.com/gaurav-prasanna/wikibook/core"
)

var _ core.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of core.ImageStore.
type ImageStore struct {
	EnsureFn func(ctx context.Context, remoteURL, name string) error
}

func (s *ImageStore) Ensure(ctx context.Context, remoteURL, name string) error {
	return s.EnsureFn(ctx, remoteURL, name)
}
