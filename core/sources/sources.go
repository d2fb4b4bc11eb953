// Package sources reads article lists.
// A list is a plain-text file holding one article URL per line; every file
// in the sources directory is one list and becomes one book.
package sources

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
)

// ListFiles returns the paths of the list files in dir, sorted by name.
// Subdirectories are skipped.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.Wrap(core.KindFilesystem, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadList returns the URLs of the list at path, in file order.
// Lines are taken verbatim: there is no comment syntax and an empty line
// in the middle of a list is kept. Trailing empty lines are dropped.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Wrap(core.KindFilesystem, path, err)
	}
	return SplitList(string(data)), nil
}

// SplitList splits list contents into lines.
func SplitList(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// BookName is the output base name for the list at path: its file name
// without a ".txt" extension.
func BookName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".txt")
}
