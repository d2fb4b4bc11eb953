// Package clean implements the page-cleaning pipeline.
// A fetched article is reduced to its content region, then transformed in
// place by a fixed sequence of stages until only a minimal, self-contained
// fragment remains.
package clean

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Rules is the static configuration of the pipeline.
// A Rules value is never derived from the input page.
type Rules struct {
	// ContentID is the id of the content region container.
	ContentID string `validate:"required"`

	// BlockList selectors are removed from the region wholesale.
	BlockList []string `validate:"required,dive,required"`

	// FootnoteIDs are heading anchor ids in priority order. The first one
	// present marks where the article body ends.
	FootnoteIDs []string `validate:"dive,required"`

	// NavboxSelector matches boxes whose images are lifted into the parent.
	NavboxSelector string `validate:"required"`

	// ThumbInnerClass is the class of the wrapper created around lifted
	// images. Its style attribute is always cleared.
	ThumbInnerClass string `validate:"required"`

	// ImageScheme is prefixed to protocol-relative image sources.
	ImageScheme string `validate:"required"`

	// ImageWidth replaces the width token of image URLs.
	ImageWidth string `validate:"required"`
}

// DefaultRules returns the rule tables for Wikipedia article pages,
// English and Japanese.
func DefaultRules() Rules {
	return Rules{
		ContentID: "content",
		BlockList: []string{
			".navbox",
			".noprint",
			".ambox",
			".reference",
			".mw-editsection",
			".mw-jump-link",
			".Template-Fact",
			".Inline-Template",
			".rellink",
			".printfooter",
			".reflist",
			".infobox",
			"#siteSub",
			"#contentSub",
			"#jump-to-nav",
			"#toc",
			"#mw-navigation",
			"#footer",
			"#catlinks",
			"#mw-indicator-semiprotect",
			"#mw-indicator-protect",
			"script",
			"noscript",
			"br",
		},
		FootnoteIDs: []string{
			"References",
			"Sources",
			"External_links",
			"See_also",
			"Notes",
			"脚注",
			"注釈",
			"出典",
			"参考文献",
			"関連項目",
			"外部リンク",
		},
		NavboxSelector:  ".vertical-navbox",
		ThumbInnerClass: "thumbinner",
		ImageScheme:     "https:",
		ImageWidth:      "1920px",
	}
}

// Validate checks that every required rule is present.
func (r Rules) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}
