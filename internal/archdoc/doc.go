// Package archdoc loads multi-agent architecture descriptions from YAML or
// JSON into a generic nested value and provides the text flattening and
// field-counting primitives the dysfunction checks are built on. No schema is
// enforced; absent fields count as empty.
package archdoc
