// Package engine runs the dysfunction validation pass: it flattens a parsed
// architecture document, evaluates the pattern registry and structural
// checks against it, and returns structured findings. It also walks
// directories of documents. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
