package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/agentlint/agentlint/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	ShowPath     bool // annotate findings with their source document
	Duration     time.Duration
	FilesChecked int
}

// PrintReport writes the human-readable findings report. An empty findings
// list prints a PASS message; otherwise each finding is listed with its
// severity, evidence and fix, followed by a FAIL line when HIGH-severity
// findings exist and a WARN line when none do.
func PrintReport(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "PASS: No dysfunction patterns detected.")
		fmt.Fprintln(w, "Architecture appears to follow contract-first coordination principles.")
		printFooter(w, opts)
		return
	}

	fmt.Fprintf(w, "FINDINGS: %d potential dysfunction pattern(s) detected\n\n", len(findings))
	for i, f := range findings {
		sev := string(f.Severity)
		if !opts.NoColor {
			sev = colorSeverity(f.Severity)
		}
		name := f.Pattern
		if opts.ShowPath && f.Path != "" {
			name = f.Pattern + " (" + f.Path + ")"
		}
		fmt.Fprintf(w, "  [%s] %d. %s\n", sev, i+1, name)
		fmt.Fprintf(w, "    Problem:  %s\n", f.Description)
		fmt.Fprintf(w, "    Evidence: %s\n", f.Evidence)
		fmt.Fprintf(w, "    Fix:      %s\n", f.Fix)
		fmt.Fprintln(w)
	}

	if high := CountHigh(findings); high > 0 {
		fmt.Fprintf(w, "FAIL: %d HIGH severity issue(s). Architecture needs redesign.\n", high)
	} else {
		fmt.Fprintln(w, "WARN: Issues found but none are HIGH severity. Review recommended.")
	}
	printFooter(w, opts)
}

func printFooter(w io.Writer, opts PrintOptions) {
	if opts.FilesChecked > 1 {
		fmt.Fprintf(w, "\nDocuments checked: %d\n", opts.FilesChecked)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Check duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

// CountHigh returns the number of HIGH-severity findings.
func CountHigh(findings []types.Finding) int {
	n := 0
	for _, f := range findings {
		if f.Severity == types.SevHigh {
			n++
		}
	}
	return n
}

// WriteJSON emits findings as an indented JSON array. A nil slice is encoded
// as [] so pipelines never see null.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// ShouldFail reports whether any finding sits at or above the fail-on level.
// Unknown levels fall back to high so the exit contract stays conservative.
func ShouldFail(findings []types.Finding, failOn string) bool {
	level := map[string]int{"low": 1, "medium": 2, "high": 3}
	th := level[strings.ToLower(failOn)]
	if th == 0 {
		th = 3
	}
	sevLevel := map[types.Severity]int{types.SevLow: 1, types.SevMed: 2, types.SevHigh: 3}
	for _, f := range findings {
		if sevLevel[f.Severity] >= th {
			return true
		}
	}
	return false
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return color.New(color.FgRed).Sprint(string(s))
	case types.SevMed:
		return color.New(color.FgYellow).Sprint(string(s))
	default:
		return color.New(color.FgCyan).Sprint(string(s))
	}
}
