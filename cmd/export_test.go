package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"testdeck/pkg/deck"
	"testdeck/pkg/workspace"
)

func TestExportDeckWritesOneFilePerSlide(t *testing.T) {
	loaded, err := deck.Parse([]byte("---\ntitle: Export\n---\n\n# One\n\nfirst\n\n---\n\n# Two\n\nsecond\n"))
	if err != nil {
		t.Fatalf("parse deck: %v", err)
	}

	guard, err := workspace.NewGuard(t.TempDir())
	if err != nil {
		t.Fatalf("NewGuard error: %v", err)
	}

	count, err := exportDeck(loaded, guard, 80, false)
	if err != nil {
		t.Fatalf("exportDeck error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	first, err := os.ReadFile(filepath.Join(guard.Root(), "slide-01.txt"))
	if err != nil {
		t.Fatalf("read slide-01: %v", err)
	}
	if !strings.Contains(string(first), "One") {
		t.Fatalf("slide-01 content %q missing heading", first)
	}

	if _, err := os.Stat(filepath.Join(guard.Root(), "slide-02.txt")); err != nil {
		t.Fatalf("slide-02 missing: %v", err)
	}
}

func TestExportDeckPlainOmitsChrome(t *testing.T) {
	loaded, err := deck.Parse([]byte("---\ntitle: ChromeTitle\npaginate: true\n---\n\n# One\n\nbody\n"))
	if err != nil {
		t.Fatalf("parse deck: %v", err)
	}

	guard, err := workspace.NewGuard(t.TempDir())
	if err != nil {
		t.Fatalf("NewGuard error: %v", err)
	}

	if _, err := exportDeck(loaded, guard, 80, true); err != nil {
		t.Fatalf("exportDeck error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(guard.Root(), "slide-01.txt"))
	if err != nil {
		t.Fatalf("read slide-01: %v", err)
	}
	if strings.Contains(string(content), "ChromeTitle") {
		t.Fatalf("plain export still carries the title bar: %q", content)
	}
}

func TestResolveDeckFallsBackToBuiltin(t *testing.T) {
	loaded, err := resolveDeck(nil)
	if err != nil {
		t.Fatalf("resolveDeck error: %v", err)
	}
	if loaded.Len() == 0 {
		t.Fatal("builtin deck is empty")
	}
}

func TestResolveDeckLoadsArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Arg\n---\n\n# Slide\n"), 0o600); err != nil {
		t.Fatalf("write deck: %v", err)
	}

	loaded, err := resolveDeck([]string{path})
	if err != nil {
		t.Fatalf("resolveDeck error: %v", err)
	}
	if loaded.FrontMatter.Title != "Arg" {
		t.Fatalf("title = %q, want %q", loaded.FrontMatter.Title, "Arg")
	}
}
