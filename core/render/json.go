// Package render: JSON renderer.
// Builds a structured manifest of the book: one entry per article with its
// source URL, title, cleaned HTML and a structural summary parsed from the
// article's Markdown (headings, sections, local images, tables, lists).
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
)

// Heading represents a single heading found in an article.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Section represents a heading-delimited section of an article.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// PageStructure holds structural metadata parsed from an article.
type PageStructure struct {
	Headings []Heading `json:"headings"`
	Images   []string  `json:"images"`
	Tables   int       `json:"tables"`
	Lists    int       `json:"lists"`
}

// PageJSON is the manifest entry for one article.
type PageJSON struct {
	URL       string        `json:"url"`
	Title     string        `json:"title"`
	HTML      string        `json:"html"`
	Text      string        `json:"text"`
	Sections  []Section     `json:"sections"`
	Structure PageStructure `json:"structure"`
}

// BookJSON is the complete JSON output for a book.
type BookJSON struct {
	Name  string     `json:"name"`
	Pages []PageJSON `json:"pages"`
}

// JSONRenderer produces a structured JSON manifest of a book.
type JSONRenderer struct {
	normalizer core.Normalizer
}

// NewJSONRenderer creates a JSONRenderer parsing pages through n.
func NewJSONRenderer(n core.Normalizer) *JSONRenderer {
	return &JSONRenderer{normalizer: n}
}

// Render converts the book into the JSON manifest.
func (r *JSONRenderer) Render(book core.Book) ([]byte, error) {
	out := BookJSON{
		Name:  book.Name,
		Pages: make([]PageJSON, 0, len(book.Pages)),
	}

	for _, p := range book.Pages {
		markdown, err := r.normalizer.Normalize(p.HTML)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", p.URL, err)
		}
		headings := extractHeadings(markdown)

		out.Pages = append(out.Pages, PageJSON{
			URL:      p.URL,
			Title:    p.Title,
			HTML:     p.HTML,
			Text:     stripMarkdown(markdown),
			Sections: buildSections(markdown, headings),
			Structure: PageStructure{
				Headings: headings,
				Images:   extractImages(markdown),
				Tables:   countTables(markdown),
				Lists:    countLists(markdown),
			},
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

func buildSections(md string, headings []Heading) []Section {
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(md, "\n")
	sections := make([]Section, 0, len(headings))
	headingIdx := 0

	var currentSection *Section
	var sectionLines []string

	for _, line := range lines {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			// Flush previous section.
			if currentSection != nil {
				currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
				sections = append(sections, *currentSection)
			}
			currentSection = &Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if currentSection != nil {
			sectionLines = append(sectionLines, line)
		}
	}
	// Flush last section.
	if currentSection != nil {
		currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
		sections = append(sections, *currentSection)
	}

	return sections
}

// imageRegex matches Markdown images ![alt](src).
var imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractImages(md string) []string {
	matches := imageRegex.FindAllStringSubmatch(md, -1)
	images := make([]string, 0, len(matches))
	for _, m := range matches {
		images = append(images, m[2])
	}
	return images
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts top-level list items (lines starting with - or * or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[\s]*[-*]\s|^[\s]*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := md
	// Remove headings markers.
	text = headingRegex.ReplaceAllString(text, "$2")
	// Remove bold/italic.
	text = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`).ReplaceAllString(text, "$1")
	// Remove links and images, keep text.
	text = imageRegex.ReplaceAllString(text, "")
	text = linkRegex.ReplaceAllString(text, "$1")
	// Remove code block fences.
	text = strings.ReplaceAll(text, "```", "")
	// Remove inline code.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Collapse whitespace.
	text = regexp.MustCompile(`\n{3,}`).ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
