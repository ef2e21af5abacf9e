package deck

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed decks/*.md
var builtinFS embed.FS

const builtinDeckPath = "decks/message-testing.md"

// Load reads and parses a deck file from disk.
func Load(path string) (*Deck, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("deck path must not be empty")
	}

	absPath, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve deck path: %w", err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	parsed, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(absPath), err)
	}

	parsed.Path = absPath
	return parsed, nil
}

// Builtin returns the bundled message-testing deck. It ships with the
// binary so `present` and `export` work without a deck argument.
func Builtin() (*Deck, error) {
	content, err := builtinFS.ReadFile(builtinDeckPath)
	if err != nil {
		return nil, fmt.Errorf("load builtin deck: %w", err)
	}

	parsed, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse builtin deck: %w", err)
	}

	parsed.Path = builtinDeckPath
	return parsed, nil
}
