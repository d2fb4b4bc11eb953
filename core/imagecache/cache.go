// Package imagecache keeps downloaded article images in the results
// directory. A file name is downloaded at most once: an existing file is
// never refetched, and concurrent requests for the same name share a
// single download.
package imagecache

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
	"golang.org/x/sync/singleflight"
)

// Ensure Cache implements core.ImageStore at compile time.
var _ core.ImageStore = (*Cache)(nil)

// Cache stores images as files named after their remote basename.
type Cache struct {
	dir     string
	fetcher core.ByteFetcher
	logger  *slog.Logger
	group   singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report downloads.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// New creates a Cache writing into dir and downloading through fetcher.
func New(dir string, fetcher core.ByteFetcher, opts ...Option) *Cache {
	c := &Cache{
		dir:     dir,
		fetcher: fetcher,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns where the image called name is stored.
func (c *Cache) Path(name string) string {
	return filepath.Join(c.dir, name)
}

// Ensure makes sure the file name exists in the cache, downloading
// remoteURL if it does not. Bytes are written verbatim. Nothing is written
// when the download fails.
func (c *Cache) Ensure(ctx context.Context, remoteURL, name string) error {
	if err := validName(name); err != nil {
		return core.Wrap(core.KindFilesystem, name, err)
	}

	_, err, _ := c.group.Do(name, func() (any, error) {
		path := c.Path(name)

		exists, err := fileExists(path)
		if err != nil {
			return nil, core.Wrap(core.KindFilesystem, path, err)
		}
		if exists {
			c.logger.Debug("image cached", "name", name)
			return nil, nil
		}

		data, err := c.fetcher.FetchBytes(ctx, remoteURL)
		if err != nil {
			return nil, err
		}

		if err := writeFile(path, data); err != nil {
			return nil, core.Wrap(core.KindFilesystem, path, err)
		}
		c.logger.Debug("image downloaded", "name", name, "bytes", len(data))
		return nil, nil
	})
	return err
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// writeFile writes data to a temporary file next to path and renames it
// into place, so path either holds the complete image or does not exist.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// validName rejects names that would escape the cache directory.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.New("invalid image file name")
	}
	return nil
}
