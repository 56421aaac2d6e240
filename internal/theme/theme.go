package theme

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
)

// importRegex matches @import "file.css"; or @import 'file.css'; or @import url("file.css");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// Theme is a user-supplied CSS file installed beneath the generated stylesheet.
// It can style anything the config does not cover (e.g. label padding).
type Theme struct {
	Path string
	CSS  string
}

// LoadTheme reads a theme file and inlines its @import statements.
func LoadTheme(path string) (*Theme, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	return &Theme{
		Path: path,
		CSS:  ProcessImports(string(css), filepath.Dir(path), nil),
	}, nil
}

// Reload re-reads the theme from disk and reports whether its CSS changed.
// Imported files are re-read too.
func (t *Theme) Reload() (bool, error) {
	fresh, err := LoadTheme(t.Path)
	if err != nil {
		return false, err
	}
	if fresh.CSS == t.CSS {
		return false, nil
	}
	t.CSS = fresh.CSS
	return true, nil
}

// ProcessImports resolves and inlines @import statements in CSS.
// Imports are resolved relative to baseDir.
// The seen map holds the files on the current import chain; a file may be
// imported from several branches but never from inside itself.
func ProcessImports(css string, baseDir string, seen map[string]bool) string {
	if seen == nil {
		seen = make(map[string]bool)
	}

	return importRegex.ReplaceAllStringFunc(css, func(match string) string {
		submatch := importRegex.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}

		importPath := submatch[1]
		fullPath := importPath
		if !filepath.IsAbs(importPath) {
			fullPath = filepath.Join(baseDir, importPath)
		}

		if seen[fullPath] {
			return "/* circular import prevented: " + importPath + " */"
		}

		imported, err := os.ReadFile(fullPath)
		if err != nil {
			return "/* import failed: " + importPath + " */"
		}

		chain := maps.Clone(seen)
		chain[fullPath] = true
		return "/* imported: " + importPath + " */\n" +
			ProcessImports(string(imported), filepath.Dir(fullPath), chain)
	})
}
