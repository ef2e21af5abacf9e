// Package render turns deck slides into styled terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"testdeck/pkg/deck"
)

// Renderer renders slides at a fixed terminal width.
type Renderer struct {
	width int
	theme theme
	md    *glamour.TermRenderer
}

const minWidth = 40

// New builds a renderer for the given width and deck theme name.
// Unknown width is clamped; the theme name comes from deck front matter.
func New(width int, themeName string) (*Renderer, error) {
	if width < minWidth {
		width = minWidth
	}

	md, err := newMarkdownRenderer(width, themeName)
	if err != nil {
		return nil, fmt.Errorf("build markdown renderer: %w", err)
	}

	return &Renderer{width: width, theme: themeFor(themeName), md: md}, nil
}

func newMarkdownRenderer(width int, themeName string) (*glamour.TermRenderer, error) {
	wrap := glamour.WithWordWrap(width - 4)
	switch themeName {
	case "dark":
		return glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), wrap)
	case "light":
		return glamour.NewTermRenderer(glamour.WithStandardStyle("light"), wrap)
	default:
		return glamour.NewTermRenderer(glamour.WithAutoStyle(), wrap)
	}
}

// Width returns the render width in terminal cells.
func (r *Renderer) Width() int {
	return r.width
}

// Slide renders one slide with deck chrome: title bar, body, footer line.
func (r *Renderer) Slide(d *deck.Deck, number int) (string, error) {
	slide, ok := d.Slide(number)
	if !ok {
		return "", fmt.Errorf("slide %d out of range 1..%d", number, d.Len())
	}

	body, err := r.md.Render(slide.Body)
	if err != nil {
		return "", fmt.Errorf("render slide %d: %w", number, err)
	}

	parts := []string{
		r.titleBar(d.FrontMatter.Title),
		strings.TrimRight(body, "\n"),
	}
	if footer := r.footerLine(d, slide); footer != "" {
		parts = append(parts, footer)
	}

	return strings.Join(parts, "\n"), nil
}

// Body renders just the Markdown body without chrome, for export.
func (r *Renderer) Body(slide deck.Slide) (string, error) {
	body, err := r.md.Render(slide.Body)
	if err != nil {
		return "", fmt.Errorf("render slide %d: %w", slide.Number, err)
	}
	return strings.TrimRight(body, "\n"), nil
}

func (r *Renderer) titleBar(title string) string {
	return r.theme.titleBar.Width(r.width).Render(centerCell(title, r.width))
}

func (r *Renderer) footerLine(d *deck.Deck, slide deck.Slide) string {
	footer := d.FrontMatter.Footer
	if override, ok := slide.Directives["footer"]; ok {
		footer = override
	}

	paginate := d.FrontMatter.Paginate
	if override, ok := slide.Directives["paginate"]; ok {
		paginate = override != "false"
	}

	page := ""
	if paginate {
		page = fmt.Sprintf("%d / %d", slide.Number, d.Len())
	}
	if footer == "" && page == "" {
		return ""
	}

	gap := r.width - runewidth.StringWidth(footer) - runewidth.StringWidth(page)
	if gap < 1 {
		gap = 1
	}

	line := footer + strings.Repeat(" ", gap) + page
	return r.theme.footer.Render(line)
}

// centerCell pads text to the given display width, counting wide runes.
func centerCell(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}

	left := (width - w) / 2
	return strings.Repeat(" ", left) + text
}
