package core

import (
	"github.com/agentlint/agentlint/internal/archdoc"
	"github.com/agentlint/agentlint/internal/engine"
	"github.com/agentlint/agentlint/internal/patterns"
	"github.com/agentlint/agentlint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result

// Parse decodes an architecture document from raw bytes, choosing the format
// from the extension of name.
func Parse(name string, b []byte) (any, error) {
	return archdoc.Parse(name, b)
}

// Check validates an already-parsed architecture document.
func Check(doc any, cfg Config) []Finding {
	return engine.Validate(doc, cfg)
}

// CheckFile loads and validates a single document file.
func CheckFile(path string, cfg Config) ([]Finding, error) {
	return engine.CheckFile(path, cfg)
}

// CheckPath validates a file or a directory tree of documents.
func CheckPath(cfg Config) (Result, error) {
	return engine.CheckPath(cfg)
}

// PatternNames returns every check name in evaluation order.
// This is exposed for convenience to avoid importing internals directly.
func PatternNames() []string { return patterns.Names() }
