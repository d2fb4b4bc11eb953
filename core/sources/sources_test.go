package sources_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one URL per line",
			content: "https://en.wikipedia.org/wiki/A\nhttps://en.wikipedia.org/wiki/B",
			want:    []string{"https://en.wikipedia.org/wiki/A", "https://en.wikipedia.org/wiki/B"},
		},
		{
			name:    "trailing newlines dropped",
			content: "https://x/A\nhttps://x/B\n\n",
			want:    []string{"https://x/A", "https://x/B"},
		},
		{
			name:    "CRLF line endings",
			content: "https://x/A\r\nhttps://x/B\r\n",
			want:    []string{"https://x/A", "https://x/B"},
		},
		{
			name:    "inner empty line kept",
			content: "https://x/A\n\nhttps://x/B\n",
			want:    []string{"https://x/A", "", "https://x/B"},
		},
		{
			name:    "no comment syntax",
			content: "# physics\nhttps://x/A\n",
			want:    []string{"# physics", "https://x/A"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sources.SplitList(tt.content)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListFiles(t *testing.T) {
	t.Parallel()

	t.Run("sorted files, directories skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"zoology.txt", "astronomy.txt", "music"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("https://x/A\n"), 0644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0755))

		got, err := sources.ListFiles(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "astronomy.txt"),
			filepath.Join(dir, "music"),
			filepath.Join(dir, "zoology.txt"),
		}, got)
	})

	t.Run("missing directory is a filesystem error", func(t *testing.T) {
		t.Parallel()

		_, err := sources.ListFiles(filepath.Join(t.TempDir(), "nope"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrFilesystem))
	})
}

func TestReadList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "physics.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://x/Atom\nhttps://x/Quark\n"), 0644))

	got, err := sources.ReadList(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x/Atom", "https://x/Quark"}, got)

	_, err = sources.ReadList(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrFilesystem))
}

func TestBookName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "physics", sources.BookName(filepath.Join("sources", "physics.txt")))
	assert.Equal(t, "music", sources.BookName(filepath.Join("sources", "music")))
	assert.Equal(t, "notes.md", sources.BookName("notes.md"))
}
