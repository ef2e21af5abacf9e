package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDeck = `---
title: Sample
author: Tester
theme: dark
paginate: true
---

# First

Opening slide.

---

<!-- class: lead -->

# Second

Body with a fenced block:

` + "```go\n---\nnot a delimiter\n```" + `

---

# Third

Closing slide.
`

func TestParseSplitsSlides(t *testing.T) {
	parsed, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if parsed.Len() != 3 {
		t.Fatalf("slide count = %d, want 3", parsed.Len())
	}

	if parsed.FrontMatter.Title != "Sample" {
		t.Fatalf("title = %q, want %q", parsed.FrontMatter.Title, "Sample")
	}
	if !parsed.FrontMatter.Paginate {
		t.Fatal("paginate = false, want true")
	}
}

func TestParseKeepsFencedDelimiters(t *testing.T) {
	parsed, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	second, ok := parsed.Slide(2)
	if !ok {
		t.Fatal("slide 2 missing")
	}
	if !strings.Contains(second.Body, "not a delimiter") {
		t.Fatalf("fenced block was split: %q", second.Body)
	}
}

func TestParseExtractsDirectivesAndHeadings(t *testing.T) {
	parsed, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	second, _ := parsed.Slide(2)
	if second.Directives["class"] != "lead" {
		t.Fatalf("directives = %v, want class=lead", second.Directives)
	}
	if strings.Contains(second.Body, "<!--") {
		t.Fatalf("directive comment left in body: %q", second.Body)
	}
	if second.Heading != "Second" {
		t.Fatalf("heading = %q, want %q", second.Heading, "Second")
	}

	first, _ := parsed.Slide(1)
	if len(first.Directives) != 0 {
		t.Fatalf("slide 1 directives = %v, want none", first.Directives)
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	parsed, err := Parse([]byte("# First\n\nbody\n\n---\n\n# Second\n\nbody\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if parsed.Len() != 2 {
		t.Fatalf("slide count = %d, want 2", parsed.Len())
	}
	if parsed.FrontMatter != (FrontMatter{}) {
		t.Fatalf("front matter = %+v, want zero value", parsed.FrontMatter)
	}
	if parsed.Slides[1].Heading != "Second" {
		t.Fatalf("slide 2 heading = %q, want %q", parsed.Slides[1].Heading, "Second")
	}
}

func TestParseEmptyFrontMatterBlock(t *testing.T) {
	parsed, err := Parse([]byte("---\n---\n\n# Slide\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if parsed.FrontMatter.Title != "" {
		t.Fatalf("title = %q, want empty", parsed.FrontMatter.Title)
	}
	if parsed.Len() != 1 {
		t.Fatalf("slide count = %d, want 1", parsed.Len())
	}
}

func TestParseRejectsUnclosedFrontMatter(t *testing.T) {
	if _, err := Parse([]byte("---\ntitle: Broken\n")); err == nil {
		t.Fatal("expected error for unclosed front matter")
	}
}

func TestParseRejectsBadTheme(t *testing.T) {
	content := "---\ntitle: T\ntheme: neon\n---\n\n# Slide\n"
	if _, err := Parse([]byte(content)); err == nil {
		t.Fatal("expected validation error for unknown theme")
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o600); err != nil {
		t.Fatalf("write deck file: %v", err)
	}

	parsed, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if parsed.Path == "" || !filepath.IsAbs(parsed.Path) {
		t.Fatalf("path = %q, want absolute", parsed.Path)
	}
	if parsed.Len() != 3 {
		t.Fatalf("slide count = %d, want 3", parsed.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatal("expected error for missing deck file")
	}
}

func TestBuiltinDeckParses(t *testing.T) {
	parsed, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin error: %v", err)
	}

	if parsed.Len() < 5 {
		t.Fatalf("builtin deck has %d slides, want at least 5", parsed.Len())
	}
	if parsed.FrontMatter.Title == "" {
		t.Fatal("builtin deck has no title")
	}
}
