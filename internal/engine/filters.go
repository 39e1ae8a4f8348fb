package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

// isArchDoc reports whether rel has an extension the loader understands.
func isArchDoc(rel string) bool {
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// allowedByGlobs applies comma-separated include/exclude doublestar globs to
// a slash-normalized relative path. Globs also match against the base name so
// "*.yaml" behaves as expected at any depth.
func allowedByGlobs(rel string, cfg Config) bool {
	pathToMatch := filepath.ToSlash(rel)
	if cfg.IncludeGlobs != "" {
		included := false
		for _, g := range splitGlobs(cfg.IncludeGlobs) {
			if ok, _ := doublestar.Match(g, pathToMatch); ok {
				included = true
				break
			}
			if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, g := range splitGlobs(cfg.ExcludeGlobs) {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return false
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return false
		}
	}
	return true
}

func splitGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
