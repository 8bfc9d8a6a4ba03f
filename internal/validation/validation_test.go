package validation

import (
	"testing"

	"github.com/secretsentry/secretsentry-cli/internal/detect"
)

func TestDecision_Valid_ReviewedRequiresJustification(t *testing.T) {
	d := Decision{Classification: ClassificationReviewed}
	if d.Valid() {
		t.Fatalf("expected invalid: reviewed without justification")
	}

	d.Justification = "rotated the key already"
	if !d.Valid() {
		t.Fatalf("expected valid once justification is set")
	}
}

func TestDecision_Valid_FalsePositiveNeedsNoJustification(t *testing.T) {
	d := Decision{Classification: ClassificationFalsePositive}
	if !d.Valid() {
		t.Fatalf("expected valid: false_positive never requires justification")
	}
}

func TestGroupByKind_GroupsPreservingFindingOrder(t *testing.T) {
	findings := []detect.Finding{
		{Path: "a.py", LineNumber: 1, Kind: "AWS Access Key ID"},
		{Path: "b.py", LineNumber: 2, Kind: "GitHub Personal Access Token"},
		{Path: "c.py", LineNumber: 3, Kind: "AWS Access Key ID"},
	}

	got := GroupByKind(findings)
	if len(got["AWS Access Key ID"]) != 2 {
		t.Fatalf("got %d AWS findings, want 2", len(got["AWS Access Key ID"]))
	}
	if len(got["GitHub Personal Access Token"]) != 1 {
		t.Fatalf("got %d GitHub findings, want 1", len(got["GitHub Personal Access Token"]))
	}
}

func TestFilterByQuery_EmptyQueryReturnsAll(t *testing.T) {
	findings := []detect.Finding{{LineText: "aws_key = \"x\""}}
	got := FilterByQuery(findings, "")
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
}

func TestFilterByQuery_MatchesSubsequence(t *testing.T) {
	findings := []detect.Finding{
		{LineText: "aws_secret_access_key = \"x\""},
		{LineText: "stripe_key = \"y\""},
	}
	got := FilterByQuery(findings, "aws")
	if len(got) != 1 || got[0].LineText != findings[0].LineText {
		t.Fatalf("got %+v", got)
	}
}
