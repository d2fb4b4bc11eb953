// Package core defines the pipeline interfaces for wikibook.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// FetchResult holds the body and response metadata of a page fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Page is one cleaned article, ready to be appended to a book.
type Page struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// Book is the compiled result of one source list.
type Book struct {
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
	Style string `json:"-"`
}

// Fetcher retrieves a page's raw HTML from a URL.
// The URL is escaped for illegal characters before the request is sent.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ByteFetcher retrieves the raw bytes behind a URL (images).
type ByteFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Extractor parses raw HTML into a document.
type Extractor interface {
	Extract(html string) (*goquery.Document, error)
}

// Cleaner runs the page-cleaning pipeline over a parsed document and
// returns the serialized content region.
type Cleaner interface {
	Clean(ctx context.Context, doc *goquery.Document) (string, error)
}

// ImageStore makes sure a remote image is available locally under name.
type ImageStore interface {
	Ensure(ctx context.Context, remoteURL, name string) error
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a compiled book into a final output format.
type Renderer interface {
	Render(book Book) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
