// Package validation is the core-side data contract for the interactive
// prompt the hook layer may run against a finding list (§4.6, C6). The
// core never runs the prompt itself; it only defines what comes back.
package validation

import "github.com/secretsentry/secretsentry-cli/internal/detect"

// Classification is the reviewer's verdict on a finding list.
type Classification string

const (
	ClassificationReviewed      Classification = "reviewed"
	ClassificationFalsePositive Classification = "false_positive"
)

// Decision is returned by an Adapter after presenting findings to a
// reviewer. Proceed false blocks the commit/push. A Reviewed
// classification requires a non-empty Justification; FalsePositive does
// not.
type Decision struct {
	Proceed        bool
	Classification Classification
	Justification  string
}

// Valid reports whether the decision satisfies the justification
// requirement for its classification.
func (d Decision) Valid() bool {
	if d.Classification == ClassificationReviewed {
		return d.Justification != ""
	}
	return true
}

// Adapter classifies a finding list and returns the reviewer's decision.
// The hook layer supplies findings grouped by kind; implementations may
// run an interactive prompt or return a fixed decision (e.g. in CI).
type Adapter interface {
	Classify(byKind map[string][]detect.Finding) (Decision, error)
}

// GroupByKind groups findings by their Kind field, preserving the order
// each kind is first seen in findings.
func GroupByKind(findings []detect.Finding) map[string][]detect.Finding {
	out := make(map[string][]detect.Finding)
	for _, f := range findings {
		out[f.Kind] = append(out[f.Kind], f)
	}
	return out
}
