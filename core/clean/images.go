package clean

import (
	"context"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/dom"
)

// widthToken matches the thumbnail width segment of a Wikimedia image URL
// (e.g. "220px"). The image server renders any width on the fly.
var widthToken = regexp.MustCompile(`\d\d\d\d?px`)

// RemoteImageURL builds the full-size source URL for an img src.
// Protocol-relative sources get scheme prepended; the first width token is
// replaced by width.
func RemoteImageURL(src, scheme, width string) string {
	remote := src
	if !hasScheme(src) {
		remote = scheme + src
	}
	if loc := widthToken.FindStringIndex(remote); loc != nil {
		remote = remote[:loc[0]] + width + remote[loc[1]:]
	}
	return remote
}

// LocalName is the on-disk file name for a remote image: the URL-decoded
// basename. Undecodable names are used as is.
func LocalName(remote string) string {
	base := path.Base(remote)
	name, err := url.PathUnescape(base)
	if err != nil {
		return base
	}
	return name
}

// LocalizeImages stores every image of region locally through store and
// points its src at the local copy. Explicit sizes and responsive source
// sets are dropped so the full-size copy is what gets displayed.
func LocalizeImages(ctx context.Context, region *goquery.Selection, store core.ImageStore, scheme, width string) (int, error) {
	imgs := region.Find("img")
	localized := 0
	for i := range imgs.Nodes {
		img := imgs.Eq(i)
		src, ok := img.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			continue
		}

		remote := RemoteImageURL(src, scheme, width)
		if err := store.Ensure(ctx, remote, LocalName(remote)); err != nil {
			return localized, err
		}

		img.SetAttr("src", "./"+path.Base(remote))
		dom.RemoveAttrs(img.Nodes, "width", "height", "srcset")
		localized++
	}
	return localized, nil
}

func hasScheme(src string) bool {
	u, err := url.Parse(src)
	return err == nil && u.Scheme != ""
}
