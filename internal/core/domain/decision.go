package domain

// StateDir is the directory, relative to the working directory, holding
// nonopt's own state. Directory walks never descend into it.
const StateDir = ".nonopt"

// Decision is the outcome of evaluating a rule for one directory.
type Decision struct {
	RelativeDir string
	Matched     bool
	// Prefix is the first listed prefix that matched. Empty when Matched is false.
	Prefix string
}

// DecisionRecord is a persisted Decision tagged with the fingerprint of the
// rule that produced it.
type DecisionRecord struct {
	RelativeDir string `json:"relative_dir,omitzero"`
	Matched     bool   `json:"matched,omitzero"`
	Prefix      string `json:"prefix,omitzero"`
	Fingerprint string `json:"fingerprint,omitzero"`
}

// Decision converts the record back into a Decision.
func (r DecisionRecord) Decision() Decision {
	return Decision{
		RelativeDir: r.RelativeDir,
		Matched:     r.Matched,
		Prefix:      r.Prefix,
	}
}

// NewDecisionRecord tags d with the rule fingerprint.
func NewDecisionRecord(d Decision, fingerprint string) DecisionRecord {
	return DecisionRecord{
		RelativeDir: d.RelativeDir,
		Matched:     d.Matched,
		Prefix:      d.Prefix,
		Fingerprint: fingerprint,
	}
}
