package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/agentlint/agentlint/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	findings := []types.Finding{
		{Path: "arch.yaml", Pattern: "review_chain", Severity: types.SevHigh, Description: "d", Evidence: "e"},
		{Pattern: "excessive_agents", Severity: types.SevMed, Description: "d2", Evidence: "e2"},
	}
	if err := WriteSARIF(&buf, findings, "0.1.0"); err != nil {
		t.Fatal(err)
	}

	var doc sarif
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Fatalf("expected SARIF 2.1.0; got %q", doc.Version)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Results) != 2 {
		t.Fatalf("unexpected run shape: %+v", doc)
	}
	r := doc.Runs[0].Results[0]
	if r.RuleID != "review_chain" || r.Level != "error" {
		t.Fatalf("unexpected first result: %+v", r)
	}
	if doc.Runs[0].Results[1].Level != "warning" {
		t.Fatalf("expected warning level for MEDIUM")
	}
	if doc.Runs[0].Results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI != "architecture" {
		t.Fatal("expected placeholder URI when path is empty")
	}
}
