package patterns

import (
	"testing"

	"github.com/agentlint/agentlint/internal/types"
)

func TestNamesOrder(t *testing.T) {
	want := []string{
		"review_chain",
		"escalation_hierarchy",
		"confidence_scoring",
		"consensus_protocol",
		"excessive_pipeline",
		"agent_evaluates_agent",
		"excessive_agents",
		"missing_contracts",
		"missing_test_gates",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRegistryIntegrity(t *testing.T) {
	structural := 0
	for _, p := range All() {
		if p.Severity != types.SevHigh && p.Severity != types.SevMed {
			t.Fatalf("%s: unexpected severity %q", p.Name, p.Severity)
		}
		if p.Description == "" || p.Fix == "" {
			t.Fatalf("%s: missing description or fix", p.Name)
		}
		if len(p.Keywords) == 0 {
			structural++
			if p.Name != ExcessivePipeline {
				t.Fatalf("unexpected structural pattern %s", p.Name)
			}
		}
	}
	if structural != 1 {
		t.Fatalf("expected exactly one structural registry pattern, got %d", structural)
	}
}

func TestMatchKeywords(t *testing.T) {
	kws := []string{"reviewer", "evaluator"}

	got := MatchKeywords("the Reviewer agent", kws)
	if len(got) != 1 || got[0] != "reviewer" {
		t.Fatalf("expected case-insensitive match; got %v", got)
	}

	// substring semantics: no word boundaries
	got = MatchKeywords("see the reviewers_guide", kws)
	if len(got) != 1 || got[0] != "reviewer" {
		t.Fatalf("expected embedded substring match; got %v", got)
	}

	if got := MatchKeywords("nothing here", kws); got != nil {
		t.Fatalf("expected no matches; got %v", got)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("review_chain"); !ok {
		t.Fatal("expected review_chain in registry")
	}
	if p, ok := ByName(MissingTestGates); !ok || p.Severity != types.SevHigh {
		t.Fatal("expected HIGH missing_test_gates in appended checks")
	}
	if _, ok := ByName("unknown"); ok {
		t.Fatal("expected miss for unknown name")
	}
}

func TestIndicatorSignals(t *testing.T) {
	if !HasContractSignals("a typed_interface somewhere") {
		t.Fatal("expected contract signal")
	}
	if HasContractSignals("nothing relevant") {
		t.Fatal("unexpected contract signal")
	}
	if !HasTestGateSignals("gated by contract_test suite") {
		t.Fatal("expected test gate signal")
	}
	if HasTestGateSignals("no gates") {
		t.Fatal("unexpected test gate signal")
	}
}
