package clean_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// parseRegion parses body into a page and returns the #content region.
func parseRegion(t *testing.T, body string) (*goquery.Document, *goquery.Selection) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	region := doc.Find("#content")
	require.Equal(t, 1, region.Length(), "fixture must contain one #content")
	return doc, region
}

func outer(t *testing.T, s *goquery.Selection) string {
	t.Helper()
	out, err := goquery.OuterHtml(s)
	require.NoError(t, err)
	return out
}
