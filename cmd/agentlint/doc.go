// Package agentlint provides the command-line interface for the agentlint
// tool. It configures subcommands (check, patterns, baseline, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/agentlint/agentlint/cmd/agentlint"
//	func main() { agentlint.Execute() }
package agentlint
