package core

import (
	"bytes"
	"testing"
)

func TestCheck_Smoke(t *testing.T) {
	doc, err := Parse("arch.json", []byte(`{"roles": ["reviewer"]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	findings := Check(doc, Config{})
	if len(findings) == 0 {
		t.Fatal("expected findings for a review-chain architecture")
	}
	names := PatternNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty pattern names")
	}
}

func TestMarshalFindingsRoundTrip(t *testing.T) {
	in := []Finding{{Pattern: "review_chain", Severity: "HIGH", Evidence: "Keywords found: reviewer"}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Pattern != "review_chain" {
		t.Fatalf("round trip mismatch: %v", out)
	}
}
