package clean_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikibook/core/clean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeutralizeLinks(t *testing.T) {
	t.Parallel()

	t.Run("turns anchors into spans without href", func(t *testing.T) {
		t.Parallel()

		_, region := parseRegion(t, `<div id="content"><p>
<a href="/wiki/Go" title="Go" class="mw-redirect">Go</a> and
<a href="/wiki/Gopher"><i>gophers</i></a> and
<a name="anchor">named</a>
</p></div>`)
		texts := region.Find("a").Map(func(_ int, s *goquery.Selection) string { return s.Text() })

		n := clean.NeutralizeLinks(region)

		assert.Equal(t, 3, n)
		assert.Equal(t, 0, region.Find("a").Length())
		spans := region.Find("span")
		require.Equal(t, 3, spans.Length())
		assert.Equal(t, texts, spans.Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
		assert.Equal(t, 0, region.Find("[href]").Length())
	})

	t.Run("keeps other attributes and children", func(t *testing.T) {
		t.Parallel()

		_, region := parseRegion(t, `<div id="content"><a href="/wiki/Go" title="Go" class="mw-redirect"><i>Go</i></a></div>`)

		clean.NeutralizeLinks(region)

		span := region.Find("span")
		assert.Equal(t, "Go", span.AttrOr("title", ""))
		assert.Equal(t, "mw-redirect", span.AttrOr("class", ""))
		assert.Equal(t, 1, span.Find("i").Length())
		assert.Equal(t, `<span title="Go" class="mw-redirect"><i>Go</i></span>`, outer(t, span))
	})
}
