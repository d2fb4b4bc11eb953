// Package render: PDF renderer.
// Converts each article to Markdown and lays it out with gofpdf, one
// article per page run. Handles headings (variable font sizes), paragraphs,
// lists and the locally stored images.
package render

import (
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/jung-kurt/gofpdf"
)

// pdfImageExts are the image formats gofpdf can embed.
var pdfImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// imageLineRegex matches a Markdown line holding only an image.
var imageLineRegex = regexp.MustCompile(`^!\[[^\]]*\]\(([^)\s]+)[^)]*\)$`)

// PDFRenderer renders a book as a PDF document.
type PDFRenderer struct {
	normalizer core.Normalizer
	imageDir   string
}

// NewPDFRenderer creates a PDFRenderer. Local image references are
// resolved against imageDir; images that cannot be read are skipped.
func NewPDFRenderer(n core.Normalizer, imageDir string) *PDFRenderer {
	return &PDFRenderer{normalizer: n, imageDir: imageDir}
}

// Render converts the book into PDF bytes.
func (r *PDFRenderer) Render(book core.Book) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(book.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range book.Pages {
		markdown, err := r.normalizer.Normalize(page.HTML)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", page.URL, err)
		}

		pdf.AddPage()
		if page.Title != "" {
			pdf.SetFont("Helvetica", "B", 18)
			pdf.MultiCell(0, 8, tr(page.Title), "", "L", false)
			pdf.Ln(4)
		}

		// Source URL.
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+page.URL), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)

		r.renderMarkdown(pdf, tr, markdown)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderMarkdown writes one article's Markdown line by line.
func (r *PDFRenderer) renderMarkdown(pdf *gofpdf.Fpdf, tr func(string) string, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip empty lines (add spacing instead).
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		if m := imageLineRegex.FindStringSubmatch(trimmed); m != nil {
			r.renderImage(pdf, m[1])
			continue
		}

		// Headings.
		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
			renderHeading(pdf, tr(cleanInlineMarkdown(text)), level)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)

		// List items.
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			text := "• " + cleanInlineMarkdown(trimmed[2:])
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
			continue
		}

		// Paragraphs, numbered items and table rows.
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
	}
}

// renderImage places a local image scaled to the text width.
func (r *PDFRenderer) renderImage(pdf *gofpdf.Fpdf, src string) {
	path, ok := r.localImage(src)
	if !ok {
		return
	}

	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := pdf.RegisterImageOptions(path, opts)
	if info == nil || !pdf.Ok() {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	w := info.Width()
	if maxW := pageW - left - right; w > maxW {
		w = maxW
	}
	pdf.ImageOptions(path, -1, -1, w, 0, true, opts, 0, "")
	pdf.Ln(2)
}

// localImage resolves src to a file gofpdf can embed. Each candidate is
// registered in a scratch document first, so a broken file never puts the
// book into an error state.
func (r *PDFRenderer) localImage(src string) (string, bool) {
	u, err := url.Parse(src)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	path := filepath.Join(r.imageDir, filepath.FromSlash(u.Path))
	if !pdfImageExts[strings.ToLower(filepath.Ext(path))] {
		return "", false
	}

	probe := gofpdf.New("P", "mm", "A4", "")
	probe.RegisterImageOptions(path, gofpdf.ImageOptions{ReadDpi: true})
	return path, probe.Ok()
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// Inline Markdown patterns stripped for PDF rendering.
var (
	italicRegex     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	// Remove bold markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Remove italic markers (but not inside words like don't).
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	// Remove image and link syntax, keep text.
	text = imageRegex.ReplaceAllString(text, "")
	text = linkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
