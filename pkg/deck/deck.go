// Package deck models a Markdown slide deck: YAML front matter, slides
// separated by horizontal-rule delimiters, and per-slide comment directives.
package deck

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// FrontMatter is the deck-level metadata block at the top of the file.
type FrontMatter struct {
	Title    string `yaml:"title,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark light"`
	Paginate bool   `yaml:"paginate,omitempty"`
	Footer   string `yaml:"footer,omitempty"`
}

// Slide is one delimited block of the deck.
type Slide struct {
	// Number is 1-based, matching what a presenter shows on screen.
	Number     int
	Body       string
	Heading    string
	Directives map[string]string
}

// Deck is a fully parsed presentation.
type Deck struct {
	Path        string
	FrontMatter FrontMatter
	Slides      []Slide
}

// Len returns the slide count.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns the 1-based slide, or false when out of range.
func (d *Deck) Slide(number int) (Slide, bool) {
	if d == nil || number < 1 || number > len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[number-1], true
}

// Parse builds a deck from raw Markdown content.
//
// A YAML front matter block fenced by "---" lines may open the content;
// without one the deck carries zero-value metadata. Everything after it is
// split into slides on "---" delimiter lines that sit outside fenced code
// blocks.
func Parse(content []byte) (*Deck, error) {
	matter, body, err := splitFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	var fm FrontMatter
	if matter != "" {
		if err := yaml.Unmarshal([]byte(matter), &fm); err != nil {
			return nil, fmt.Errorf("parse front matter: %w", err)
		}
	}
	if err := validate.Struct(fm); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}

	blocks := splitSlides(body)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	slides := make([]Slide, 0, len(blocks))
	for i, block := range blocks {
		slides = append(slides, newSlide(i+1, block))
	}

	return &Deck{FrontMatter: fm, Slides: slides}, nil
}

func newSlide(number int, block string) Slide {
	directives, body := extractDirectives(block)
	return Slide{
		Number:     number,
		Body:       strings.TrimSpace(body),
		Heading:    firstHeading(body),
		Directives: directives,
	}
}

func splitFrontMatter(content string) (matter string, body string, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	// No opening fence means no metadata; the whole content is slides.
	if start >= len(lines) || strings.TrimSpace(lines[start]) != "---" {
		return "", normalized, nil
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[start+1:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}

	return "", "", fmt.Errorf("front matter block is never closed")
}

// splitSlides cuts the body on "---" lines, ignoring delimiters inside
// fenced code blocks.
func splitSlides(body string) []string {
	var (
		blocks  []string
		current []string
		inFence bool
	)

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}
		if !inFence && trimmed == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// extractDirectives pulls "<!-- key: value -->" comment lines out of a
// slide block. Unrecognized comments stay in the body untouched.
func extractDirectives(block string) (map[string]string, string) {
	var (
		directives map[string]string
		kept       []string
	)

	for _, line := range strings.Split(block, "\n") {
		key, value, ok := parseDirective(line)
		if !ok {
			kept = append(kept, line)
			continue
		}
		if directives == nil {
			directives = make(map[string]string)
		}
		directives[key] = value
	}

	return directives, strings.Join(kept, "\n")
}

func parseDirective(line string) (key string, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "<!--") || !strings.HasSuffix(trimmed, "-->") {
		return "", "", false
	}

	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "<!--"), "-->"))
	key, value, found := strings.Cut(inner, ":")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	return key, value, true
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return ""
}
