package types

// Severity is a coarse-grained risk level for a finding. The string values
// appear verbatim in report output.
type Severity string

const (
	SevLow  Severity = "LOW"
	SevMed  Severity = "MEDIUM"
	SevHigh Severity = "HIGH"
)

// Finding describes one dysfunction pattern matched against an architecture
// document: which pattern fired, how bad it is, what triggered it, and the
// suggested remediation. Path is set when more than one document is checked.
type Finding struct {
	Path        string   `json:"path,omitempty"`
	Pattern     string   `json:"pattern"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Evidence    string   `json:"evidence"`
	Fix         string   `json:"fix"`
}
