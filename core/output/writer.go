// Package output handles file naming and writing for compiled books.
// Each book is written as <name><ext> in the results directory, next to
// the images the cleaner downloaded for it.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/wikibook/core"
)

// Writer writes rendered books to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, core.Wrap(core.KindFilesystem, outputDir, fmt.Errorf("creating output directory: %w", err))
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Path returns where a book called name with extension ext is written.
func (w *Writer) Path(name, ext string) string {
	return filepath.Join(w.OutputDir, name+ext)
}

// WriteBook writes data as name+ext, replacing any previous file.
func (w *Writer) WriteBook(name string, data []byte, ext string) (string, error) {
	path := w.Path(name, ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", core.Wrap(core.KindFilesystem, path, fmt.Errorf("writing file: %w", err))
	}
	return path, nil
}
