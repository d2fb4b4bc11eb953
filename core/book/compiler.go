// Package book compiles article lists into books.
// This is the orchestrator of the pipeline:
// read list → fetch → extract → clean → render → write.
package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/extract"
	"github.com/gaurav-prasanna/wikibook/core/output"
	"github.com/gaurav-prasanna/wikibook/core/sources"
	"golang.org/x/sync/errgroup"
)

// ErrNoPages is returned when every page of a list was skipped.
var ErrNoPages = errors.New("no pages compiled")

// Compiler turns article lists into books.
type Compiler struct {
	Fetcher   core.Fetcher
	Extractor core.Extractor
	Cleaner   core.Cleaner
	Renderer  core.Renderer
	Writer    *output.Writer
	Logger    *slog.Logger

	// Style is appended to every book by the HTML renderer.
	Style string

	// Concurrency is how many pages of one list are processed at once.
	// Values below 1 mean 1. Page order in the book is input order either way.
	Concurrency int

	// SkipFailed logs and drops pages that fail instead of aborting the list.
	SkipFailed bool
}

// CompileAll compiles every list in dir, one after another, and returns the
// written paths. The first failing list stops the run.
func (c *Compiler) CompileAll(ctx context.Context, dir string) ([]string, error) {
	lists, err := sources.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, list := range lists {
		path, err := c.Compile(ctx, list)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Compile builds the book for the list at listPath and writes it.
// It returns the output path.
func (c *Compiler) Compile(ctx context.Context, listPath string) (string, error) {
	urls, err := sources.ReadList(listPath)
	if err != nil {
		return "", err
	}

	name := sources.BookName(listPath)
	c.logger().Info("compiling list", "list", listPath, "pages", len(urls))

	pages, err := c.compilePages(ctx, urls)
	if err != nil {
		return "", fmt.Errorf("compiling %s: %w", listPath, err)
	}

	book := core.Book{Name: name, Pages: pages, Style: c.Style}
	data, err := c.Renderer.Render(book)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}

	return c.Writer.WriteBook(name, data, c.Renderer.Extension())
}

// compilePages processes urls with bounded concurrency. Results are stored
// by index so the book keeps input order.
func (c *Compiler) compilePages(ctx context.Context, urls []string) ([]core.Page, error) {
	results := make([]*core.Page, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Concurrency, 1))

	for i, u := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := c.CompilePage(gctx, u)
			if err != nil {
				if c.SkipFailed && gctx.Err() == nil {
					c.logger().Warn("skipping page", "url", u, "error", err)
					return nil
				}
				return err
			}
			results[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := make([]core.Page, 0, len(urls))
	for _, p := range results {
		if p != nil {
			pages = append(pages, *p)
		}
	}
	if len(urls) > 0 && len(pages) == 0 {
		return nil, ErrNoPages
	}
	return pages, nil
}

// CompilePage fetches one article and cleans it.
func (c *Compiler) CompilePage(ctx context.Context, url string) (*core.Page, error) {
	c.logger().Debug("fetching page", "url", url)

	result, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := c.Extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}
	title := extract.Title(doc)

	fragment, err := c.Cleaner.Clean(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", url, err)
	}

	return &core.Page{URL: url, Title: title, HTML: fragment}, nil
}

func (c *Compiler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
