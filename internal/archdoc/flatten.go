package archdoc

import (
	"fmt"
	"strings"
)

// maxDepth bounds recursion on untrusted document structure.
const maxDepth = 10

// Flatten concatenates every string in the document into one space-joined
// searchable string. Mapping keys are included alongside values; scalars
// contribute their default string form. Content below maxDepth is dropped.
func Flatten(v any) string { return flatten(v, 0) }

func flatten(v any, depth int) string {
	if depth > maxDepth {
		return ""
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		parts := make([]string, 0, 2*len(t))
		for k, val := range t {
			parts = append(parts, k, flatten(val, depth+1))
		}
		return strings.Join(parts, " ")
	case map[any]any:
		parts := make([]string, 0, 2*len(t))
		for k, val := range t {
			parts = append(parts, fmt.Sprintf("%v", k), flatten(val, depth+1))
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, flatten(item, depth+1))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
