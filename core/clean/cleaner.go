package clean

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/dom"
	"github.com/gaurav-prasanna/wikibook/core/extract"
)

// Ensure Cleaner implements core.Cleaner at compile time.
var _ core.Cleaner = (*Cleaner)(nil)

// Cleaner runs the cleaning stages over a page's content region.
type Cleaner struct {
	rules  Rules
	images core.ImageStore
	logger *slog.Logger

	blocked  *dom.Query
	navboxes *dom.Query
	thumbs   *dom.Query
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cleaner) {
		c.logger = l
	}
}

// New validates rules, compiles their selectors and returns a Cleaner that
// stores images through images.
func New(rules Rules, images core.ImageStore, opts ...Option) (*Cleaner, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	c := &Cleaner{
		rules:  rules,
		images: images,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if c.blocked, err = dom.Compile(rules.BlockList...); err != nil {
		return nil, fmt.Errorf("block list: %w", err)
	}
	if c.navboxes, err = dom.Compile(rules.NavboxSelector); err != nil {
		return nil, fmt.Errorf("navbox selector: %w", err)
	}
	if c.thumbs, err = dom.Compile("." + rules.ThumbInnerClass); err != nil {
		return nil, fmt.Errorf("thumb class: %w", err)
	}
	return c, nil
}

// Clean locates the content region of doc, cleans it in place and returns
// its serialized HTML. A document without a content region is a parse error.
func (c *Cleaner) Clean(ctx context.Context, doc *goquery.Document) (string, error) {
	region, err := extract.Region(doc, c.rules.ContentID)
	if err != nil {
		return "", err
	}
	return c.CleanRegion(ctx, region)
}

// CleanRegion runs every stage over region.
//
// Order matters: truncation runs before pruning and flattening so nothing
// from the cut sections survives, and flattening runs before localization
// so lifted images are still visited.
func (c *Cleaner) CleanRegion(ctx context.Context, region *goquery.Selection) (string, error) {
	StripAttributes(region, c.thumbs)

	if id, ok := TruncateFootnotes(region, c.rules.FootnoteIDs); ok {
		c.logger.Debug("truncated footnotes", "heading", id)
	}

	pruned := PruneDeadNodes(region, c.blocked)
	links := NeutralizeLinks(region)
	moved := FlattenNavboxes(region, c.navboxes, c.rules.ThumbInnerClass)

	images, err := LocalizeImages(ctx, region, c.images, c.rules.ImageScheme, c.rules.ImageWidth)
	if err != nil {
		return "", err
	}

	c.logger.Debug("cleaned region",
		"pruned", pruned,
		"links", links,
		"navbox_images", moved,
		"images", images,
	)

	out, err := goquery.OuterHtml(region)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return out, nil
}
