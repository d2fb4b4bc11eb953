package extract_test

import (
	"errors"
	"testing"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion(t *testing.T) {
	t.Parallel()

	t.Run("finds the container by id", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.New().Extract(`<html><body>
<div id="mw-navigation">nav</div>
<div id="content"><p>body</p></div>
</body></html>`)
		require.NoError(t, err)

		region, err := extract.Region(doc, "content")

		require.NoError(t, err)
		assert.Equal(t, "body", region.Find("p").Text())
	})

	t.Run("missing container is a parse error", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.New().Extract(`<html><body><p>no region</p></body></html>`)
		require.NoError(t, err)

		_, err = extract.Region(doc, "content")

		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrParse))
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "first heading wins",
			html: `<html><head><title>Gopher - Wikipedia</title></head><body><h1 id="firstHeading"> Gopher </h1><h1>Other</h1></body></html>`,
			want: "Gopher",
		},
		{
			name: "falls back to h1",
			html: `<html><head><title>Page</title></head><body><h1>Rodent</h1></body></html>`,
			want: "Rodent",
		},
		{
			name: "falls back to title",
			html: `<html><head><title>Only Title</title></head><body></body></html>`,
			want: "Only Title",
		},
		{
			name: "none",
			html: `<html><body><p>text</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := extract.New().Extract(tt.html)
			require.NoError(t, err)

			assert.Equal(t, tt.want, extract.Title(doc))
		})
	}
}
