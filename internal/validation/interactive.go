package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sahilm/fuzzy"

	"github.com/secretsentry/secretsentry-cli/internal/detect"
)

// InteractiveAdapter runs a terminal form asking the reviewer to classify
// a finding list, grounded on the pack's huh.Form idiom for multi-step
// prompts with live validation.
type InteractiveAdapter struct{}

func NewInteractiveAdapter() *InteractiveAdapter { return &InteractiveAdapter{} }

func (a *InteractiveAdapter) Classify(byKind map[string][]detect.Finding) (Decision, error) {
	if len(byKind) == 0 {
		return Decision{Proceed: true, Classification: ClassificationFalsePositive}, nil
	}

	var proceed bool = true
	classification := string(ClassificationFalsePositive)
	justification := ""

	summary := summarizeByKind(byKind)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Secrets found").
				Description(summary).
				Next(true).
				NextLabel("Continue"),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Proceed with this push/commit?").
				Value(&proceed),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should these findings be classified?").
				Options(
					huh.NewOption("Reviewed (a justification is required)", string(ClassificationReviewed)),
					huh.NewOption("False positive", string(ClassificationFalsePositive)),
				).
				Value(&classification),
		).WithHideFunc(func() bool { return !proceed }),
		huh.NewGroup(
			huh.NewText().
				Title("Justification").
				Description("Appended to the commit message by the hook.").
				CharLimit(500).
				Value(&justification).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a justification is required for reviewed findings")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !proceed || classification != string(ClassificationReviewed) }),
	)

	if err := form.Run(); err != nil {
		return Decision{}, err
	}

	return Decision{
		Proceed:        proceed,
		Classification: Classification(classification),
		Justification:  justification,
	}, nil
}

func summarizeByKind(byKind map[string][]detect.Finding) string {
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var b strings.Builder
	for _, k := range kinds {
		fmt.Fprintf(&b, "%s: %d\n", k, len(byKind[k]))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FilterByQuery narrows findings to those whose line text fuzzy-matches
// query, used by the finding picker to let a reviewer jump to a specific
// secret in a long list.
func FilterByQuery(findings []detect.Finding, query string) []detect.Finding {
	if query == "" {
		return findings
	}
	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = f.LineText
	}
	matches := fuzzy.Find(query, lines)

	out := make([]detect.Finding, 0, len(matches))
	for _, m := range matches {
		out = append(out, findings[m.Index])
	}
	return out
}
