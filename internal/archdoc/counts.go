package archdoc

// StageCount returns the number of pipeline stages declared in the document.
// The first present field among stages, pipeline, phases wins; a present
// value that is neither a sequence nor a mapping counts as zero.
func StageCount(doc any) int {
	return countField(doc, "stages", "pipeline", "phases")
}

// AgentCount returns the number of agents declared in the document, from the
// first present field among agents, roles, workers.
func AgentCount(doc any) int {
	return countField(doc, "agents", "roles", "workers")
}

func countField(doc any, fields ...string) int {
	m, ok := doc.(map[string]any)
	if !ok {
		return 0
	}
	for _, f := range fields {
		v, present := m[f]
		if !present {
			continue
		}
		switch t := v.(type) {
		case []any:
			return len(t)
		case map[string]any:
			return len(t)
		case map[any]any:
			return len(t)
		}
		return 0
	}
	return 0
}
