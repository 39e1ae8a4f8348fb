// Package patterns holds the fixed dysfunction pattern registry. The table is
// defined at process start and never mutated.
package patterns

import (
	"strings"

	"github.com/agentlint/agentlint/internal/types"
)

// Pattern is one immutable dysfunction rule. An empty keyword list means the
// pattern is evaluated structurally rather than lexically.
type Pattern struct {
	Name        string
	Keywords    []string
	Severity    types.Severity
	Description string
	Fix         string
}

// Names of the structural checks. ExcessivePipeline sits inside the registry;
// the others run after the keyword pass.
const (
	ExcessivePipeline = "excessive_pipeline"
	ExcessiveAgents   = "excessive_agents"
	MissingContracts  = "missing_contracts"
	MissingTestGates  = "missing_test_gates"
)

var registry = []Pattern{
	{
		Name: "review_chain",
		Keywords: []string{
			"reviewer", "review_agent", "code_review", "approval_gate",
			"quality_check", "evaluator", "assessor", "judge_agent",
		},
		Severity:    types.SevHigh,
		Description: "Subjective review agents create Crawford-Sobel degradation",
		Fix:         "Replace with mechanical test verification against contracts",
	},
	{
		Name: "escalation_hierarchy",
		Keywords: []string{
			"escalate", "arbiter", "escalation", "override",
			"force_approve", "supervisor", "manager_agent",
		},
		Severity:    types.SevHigh,
		Description: "Escalation hierarchies recreate middle management",
		Fix:         "Remove escalation layers; use contract tests as the sole arbiter",
	},
	{
		Name: "confidence_scoring",
		Keywords: []string{
			"confidence_score", "confidence_threshold", "quality_score",
			"rating", "score_gate", "confidence_gate",
		},
		Severity:    types.SevMed,
		Description: "Confidence scores are Goodhart-vulnerable proxies",
		Fix:         "Replace with binary pass/fail mechanical gates (tests pass or not)",
	},
	{
		Name: "consensus_protocol",
		Keywords: []string{
			"vote", "consensus", "debate", "deliberation",
			"majority", "agreement", "negotiate",
		},
		Severity:    types.SevMed,
		Description: "Agent consensus shifts correct answers to incorrect more often than reverse",
		Fix:         "Define truth via contracts; verify via tests; no voting",
	},
	{
		Name:        ExcessivePipeline, // checked by stage count
		Severity:    types.SevHigh,
		Description: "Pipelines with >4 stages spend more on coordination than production",
		Fix:         "Reduce to: decompose -> contract+test -> implement -> integrate",
	},
	{
		Name: "agent_evaluates_agent",
		Keywords: []string{
			"review_output", "check_work", "validate_code",
			"assess_quality", "grade_output", "feedback_loop",
		},
		Severity:    types.SevHigh,
		Description: "Agents evaluating other agents' output is the core dysfunction",
		Fix:         "Only tests evaluate output; agents only produce output",
	},
}

// appended describes the checks that run after the registry pass. The
// excessive_agents description here is the static listing form; the engine
// formats a dynamic one embedding the observed count.
var appended = []Pattern{
	{
		Name:        ExcessiveAgents,
		Severity:    types.SevMed,
		Description: "More agents = more coordination overhead",
		Fix:         "Reduce to minimum viable agent count. Start with 1, justify each addition.",
	},
	{
		Name:        MissingContracts,
		Severity:    types.SevHigh,
		Description: "No contract definitions found. Agents will produce incompatible interfaces.",
		Fix:         "Define typed interface contracts BEFORE implementation begins.",
	},
	{
		Name:        MissingTestGates,
		Severity:    types.SevHigh,
		Description: "No mechanical test gates found. Acceptance will rely on subjective evaluation.",
		Fix:         "Generate executable tests from contracts. Tests are the only acceptance criterion.",
	},
}

// Positive-signal indicator terms: their absence is the finding.
var (
	contractTerms = []string{"contract", "interface_spec", "typed_interface", "componentcontract"}
	testGateTerms = []string{"test_suite", "contract_test", "mechanical_gate", "pass_fail"}
)

// All returns the registry in evaluation order.
func All() []Pattern { return registry }

// Appended returns the checks evaluated after the registry pass.
func Appended() []Pattern { return appended }

// ByName looks up a pattern or appended check by name.
func ByName(name string) (Pattern, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range appended {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Names returns every check name in evaluation order, appended checks last.
func Names() []string {
	out := make([]string, 0, len(registry)+len(appended))
	for _, p := range registry {
		out = append(out, p.Name)
	}
	for _, p := range appended {
		out = append(out, p.Name)
	}
	return out
}

// MatchKeywords reports every keyword occurring as a case-insensitive
// substring of text, in keyword order. No word-boundary enforcement: a
// keyword embedded in a longer token still matches.
func MatchKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// HasContractSignals reports whether any contract indicator term appears in
// the flattened document text.
func HasContractSignals(text string) bool {
	return len(MatchKeywords(text, contractTerms)) > 0
}

// HasTestGateSignals reports whether any test-gate indicator term appears in
// the flattened document text.
func HasTestGateSignals(text string) bool {
	return len(MatchKeywords(text, testGateTerms)) > 0
}
