package detect

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/secretsentry/secretsentry-cli/internal/catalog"
)

var (
	dateShapeRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeShapeRe     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	isoDateTimeRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(:\d{2})?`)
	structuralURLRe = regexp.MustCompile(`(?i)(https?|ftp|file)://`)
)

// shouldSkipValue implements §4.4.2: an ordered chain of suppression
// checks where any "true" short-circuits to reject the candidate value v
// found in path. Suppression is pure: identical (v, path) always yields
// the same decision.
func shouldSkipValue(v, path string) bool {
	if len(v) < 6 || len(v) > 500 {
		return true
	}

	lower := strings.ToLower(v)

	if fp, ok := catalog.ExtFalsePositives[strings.ToLower(filepath.Ext(path))]; ok {
		if _, hit := fp[lower]; hit {
			return true
		}
	}

	if _, hit := catalog.GlobalLowValue[lower]; hit {
		return true
	}

	if _, hit := catalog.ProgrammingTerms[lower]; hit {
		return true
	}

	if _, hit := catalog.NaturalLanguage[lower]; hit {
		return true
	}

	if structuralURLRe.MatchString(v) {
		return true
	}
	for _, tld := range catalog.KnownTLDs {
		if strings.Contains(lower, tld) {
			return true
		}
	}
	for _, ext := range catalog.NonSecretExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	for _, frag := range catalog.TemplateFragments {
		if strings.Contains(v, frag) {
			return true
		}
	}
	for _, prefix := range catalog.CodeKeywordPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if strings.Contains(v, " ") {
		words := strings.Fields(lower)
		funcWordHits := 0
		for _, w := range words {
			if _, ok := catalog.EnglishFunctionWords[w]; ok {
				funcWordHits++
			}
		}
		if funcWordHits >= 2 {
			return true
		}
	}

	if dateShapeRe.MatchString(v) || timeShapeRe.MatchString(v) || isoDateTimeRe.MatchString(v) {
		return true
	}

	for _, marker := range catalog.DescriptiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	for _, phrase := range catalog.AuthorizationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, suffix := range catalog.IdentifierRoleSuffixes {
		if strings.HasSuffix(lower, suffix) {
			for _, prefix := range catalog.NonSecretPrefixes {
				if strings.HasPrefix(lower, prefix) {
					return true
				}
			}
		}
	}

	return false
}

// isSuspiciousName implements §4.4.3's is_suspicious_name(name).
func isSuspiciousName(name string) bool {
	lower := strings.ToLower(name)

	if _, ok := catalog.JSPJavaSafeNames[lower]; ok {
		return false
	}

	for _, suffix := range catalog.MethodSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}
	for _, prefix := range catalog.AccessorPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	if _, ok := catalog.AuthStatusWords[lower]; ok {
		return false
	}

	if strings.Contains(lower, "key") {
		if lower == "key" {
			return true
		}
		return containsAny(lower, "api", "secret", "private", "auth", "token")
	}

	if strings.Contains(lower, "auth") {
		return containsAny(lower, "key", "token", "secret", "credential", "pass")
	}

	return containsAny(lower, "token", "secret", "password", "pwd", "pass", "credential", "private", "cert", "ssh")
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var terraformOverrideTokens = []string{
	"keyring", "keyrings", "networks", "subnetworks", "projects/",
	"google_compute_network", "google_kms_keyring",
}

// terraformLineOverride implements §4.4.4: for .tf files, a line whose
// case-folded text contains an infra-structural token is skipped before
// L1, independent of any value content.
func terraformLineOverride(path, line string) bool {
	if strings.ToLower(filepath.Ext(path)) != ".tf" {
		return false
	}
	lower := strings.ToLower(line)
	for _, tok := range terraformOverrideTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
