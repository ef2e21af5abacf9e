// Package workspace keeps file output contained in a chosen directory.
// The export command routes every path it writes through a Guard.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultOutputDirName = "testdeck-out"

// Guard resolves and validates output paths against a root directory.
type Guard struct {
	rootPath string
}

// NewGuard resolves an output directory, creating it when missing.
// An empty path falls back to ./testdeck-out.
func NewGuard(outputPath string) (*Guard, error) {
	resolved, err := resolveRoot(outputPath)
	if err != nil {
		return nil, err
	}
	return &Guard{rootPath: resolved}, nil
}

func resolveRoot(outputPath string) (string, error) {
	trimmed := strings.TrimSpace(outputPath)
	if trimmed == "" {
		trimmed = defaultOutputDirName
	}

	absPath, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	if err := os.MkdirAll(cleanPath, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		return "", NormalizeIOError(err, "resolve output root")
	}

	return filepath.Clean(resolved), nil
}

// Root returns the normalized absolute output root.
func (g *Guard) Root() string {
	if g == nil {
		return ""
	}
	return g.rootPath
}

// ResolvePath validates a relative file name and returns its absolute
// location inside the output root.
func (g *Guard) ResolvePath(name string) (string, error) {
	if g == nil {
		return "", NewError(ErrorIO, "output guard is nil")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewError(ErrorInvalidPath, "file name must not be empty")
	}
	if filepath.IsAbs(trimmed) {
		return "", NewError(ErrorInvalidPath, "file name must be relative to the output directory")
	}

	cleanPath := filepath.Clean(filepath.Join(g.rootPath, trimmed))
	if !isWithin(g.rootPath, cleanPath) {
		return "", NewError(ErrorOutsideOutput, "resolved path escapes the output directory")
	}

	return cleanPath, nil
}

// WriteFile resolves the name and writes content inside the root.
func (g *Guard) WriteFile(name string, content []byte) (string, error) {
	path, err := g.ResolvePath(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", NormalizeIOError(err, "create parent directory")
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", NormalizeIOError(err, "write file")
	}

	return path, nil
}

func isWithin(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}
