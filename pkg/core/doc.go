// Package core provides a small, stable facade over agentlint's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	doc, err := core.Parse("arch.yaml", raw)
//	if err != nil { /* handle */ }
//	findings := core.Check(doc, core.Config{})
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
