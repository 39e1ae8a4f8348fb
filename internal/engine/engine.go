package engine

import (
	"fmt"
	"strings"

	"github.com/agentlint/agentlint/internal/archdoc"
	"github.com/agentlint/agentlint/internal/patterns"
	"github.com/agentlint/agentlint/internal/types"
)

// Default thresholds for the structural counting checks.
const (
	DefaultMaxStages = 4
	DefaultMaxAgents = 7
)

// Config controls a validation run.
type Config struct {
	Root            string // file or directory to check
	IncludeGlobs    string // comma-separated doublestar globs (directory mode)
	ExcludeGlobs    string // comma-separated doublestar globs (directory mode)
	MaxStages       int    // 0 means DefaultMaxStages
	MaxAgents       int    // 0 means DefaultMaxAgents
	DisablePatterns string // comma-separated pattern names to skip
}

func (c Config) maxStages() int {
	if c.MaxStages > 0 {
		return c.MaxStages
	}
	return DefaultMaxStages
}

func (c Config) maxAgents() int {
	if c.MaxAgents > 0 {
		return c.MaxAgents
	}
	return DefaultMaxAgents
}

func (c Config) disabled() map[string]bool {
	out := map[string]bool{}
	if c.DisablePatterns == "" {
		return out
	}
	for _, name := range strings.Split(c.DisablePatterns, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out[name] = true
		}
	}
	return out
}

// Validate runs every dysfunction check over one parsed document and returns
// findings in evaluation order: the registry pass (with the stage-count check
// at its registry position), then agent count, then the two presence checks.
// Findings are not deduplicated.
func Validate(doc any, cfg Config) []types.Finding {
	disabled := cfg.disabled()
	text := archdoc.Flatten(doc)
	var findings []types.Finding

	for _, p := range patterns.All() {
		if disabled[p.Name] {
			continue
		}
		if p.Name == patterns.ExcessivePipeline {
			if n := archdoc.StageCount(doc); n > cfg.maxStages() {
				findings = append(findings, types.Finding{
					Pattern:     p.Name,
					Severity:    p.Severity,
					Description: p.Description,
					Fix:         p.Fix,
					Evidence:    fmt.Sprintf("Found %d stages (max recommended: %d)", n, cfg.maxStages()),
				})
			}
			continue
		}
		if matched := patterns.MatchKeywords(text, p.Keywords); len(matched) > 0 {
			findings = append(findings, types.Finding{
				Pattern:     p.Name,
				Severity:    p.Severity,
				Description: p.Description,
				Fix:         p.Fix,
				Evidence:    "Keywords found: " + strings.Join(matched, ", "),
			})
		}
	}

	if !disabled[patterns.ExcessiveAgents] {
		if n := archdoc.AgentCount(doc); n > cfg.maxAgents() {
			p, _ := patterns.ByName(patterns.ExcessiveAgents)
			findings = append(findings, types.Finding{
				Pattern:     p.Name,
				Severity:    p.Severity,
				Description: fmt.Sprintf("Architecture has %d agents. More agents = more coordination overhead.", n),
				Fix:         p.Fix,
				Evidence:    fmt.Sprintf("Agent count: %d", n),
			})
		}
	}

	if !disabled[patterns.MissingContracts] && !patterns.HasContractSignals(text) {
		p, _ := patterns.ByName(patterns.MissingContracts)
		findings = append(findings, types.Finding{
			Pattern:     p.Name,
			Severity:    p.Severity,
			Description: p.Description,
			Fix:         p.Fix,
			Evidence:    "No contract-related keywords in architecture description",
		})
	}

	if !disabled[patterns.MissingTestGates] && !patterns.HasTestGateSignals(text) {
		p, _ := patterns.ByName(patterns.MissingTestGates)
		findings = append(findings, types.Finding{
			Pattern:     p.Name,
			Severity:    p.Severity,
			Description: p.Description,
			Fix:         p.Fix,
			Evidence:    "No test-gate-related keywords in architecture description",
		})
	}

	return findings
}

// CheckFile loads and validates one document. Findings carry the file path.
func CheckFile(path string, cfg Config) ([]types.Finding, error) {
	doc, err := archdoc.Load(path)
	if err != nil {
		return nil, err
	}
	findings := Validate(doc, cfg)
	for i := range findings {
		findings[i].Path = path
	}
	return findings, nil
}
