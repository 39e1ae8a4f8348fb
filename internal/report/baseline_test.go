package report

import (
	"path/filepath"
	"testing"

	"github.com/agentlint/agentlint/internal/types"
)

func TestBaselineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentlint.baseline.json")
	known := types.Finding{Path: "arch.yaml", Pattern: "review_chain", Evidence: "Keywords found: reviewer"}
	fresh := types.Finding{Path: "arch.yaml", Pattern: "missing_contracts", Evidence: "No contract-related keywords in architecture description"}

	if err := SaveBaseline(path, []types.Finding{known}); err != nil {
		t.Fatal(err)
	}
	base, err := LoadBaseline(path)
	if err != nil {
		t.Fatal(err)
	}

	out := FilterNewFindings([]types.Finding{known, fresh}, base)
	if len(out) != 1 || out[0].Pattern != "missing_contracts" {
		t.Fatalf("expected only the new finding; got: %v", out)
	}
}

func TestLoadBaselineMissingFile(t *testing.T) {
	base, err := LoadBaseline(filepath.Join(t.TempDir(), "none.json"))
	if err == nil {
		t.Fatal("expected error for missing baseline")
	}
	// an empty baseline still filters nothing
	fs := []types.Finding{{Pattern: "review_chain"}}
	if got := FilterNewFindings(fs, base); len(got) != 1 {
		t.Fatalf("expected passthrough; got: %v", got)
	}
}
