package detect

import "testing"

func TestShouldSkipValue_ShortAndLongValuesAreSkipped(t *testing.T) {
	if !shouldSkipValue("abcde", "a.py") {
		t.Errorf("expected a 5-byte value to be skipped (below the 6-byte floor)")
	}
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	if !shouldSkipValue(string(long), "a.py") {
		t.Errorf("expected a 501-byte value to be skipped (above the 500-byte ceiling)")
	}
}

func TestShouldSkipValue_ExtensionKeyedFalsePositive(t *testing.T) {
	if !shouldSkipValue("useState", "component.js") {
		t.Errorf("expected useState to be skipped as a .js false positive")
	}
	if shouldSkipValue("useState", "main.go") {
		t.Errorf("did not expect useState to be skipped outside .js/.ts/.jsx/.tsx")
	}
}

func TestShouldSkipValue_NaturalLanguageSentenceIsSkipped(t *testing.T) {
	if !shouldSkipValue("This is an unauthorized access attempt detected by the system", "e.txt") {
		t.Errorf("expected a natural-language sentence to be skipped")
	}
}

func TestShouldSkipValue_StructuralURLAndKnownTLDAreSkipped(t *testing.T) {
	if !shouldSkipValue("https://example.com/callback", "a.py") {
		t.Errorf("expected a URL to be skipped")
	}
	if !shouldSkipValue("api.internal.dev", "a.py") {
		t.Errorf("expected a value containing a known TLD to be skipped")
	}
}

func TestShouldSkipValue_TemplateFragmentAndCodeKeywordAreSkipped(t *testing.T) {
	if !shouldSkipValue("${DATABASE_URL}", "a.py") {
		t.Errorf("expected a template fragment to be skipped")
	}
	if !shouldSkipValue("return somethingLongEnoughToCount", "a.py") {
		t.Errorf("expected a line starting with a code keyword to be skipped")
	}
}

func TestShouldSkipValue_DateAndTimeShapesAreSkipped(t *testing.T) {
	if !shouldSkipValue("2026-07-31", "a.py") {
		t.Errorf("expected an ISO date to be skipped")
	}
	if !shouldSkipValue("23:59:59", "a.py") {
		t.Errorf("expected a time-of-day value to be skipped")
	}
}

func TestShouldSkipValue_OpaqueHighEntropyValueIsNotSkipped(t *testing.T) {
	if shouldSkipValue("Zk8pQ2vLxR7nWmB4tE9sA1cD6fG3hJ0k", "a.py") {
		t.Errorf("did not expect an opaque high-entropy value to be skipped")
	}
}

func TestIsSuspiciousName_AccessorAndRoleNamesAreSafe(t *testing.T) {
	safe := []string{"getAttribute", "primaryKey", "foreignKey", "authorized", "isAuthenticated"}
	for _, name := range safe {
		if isSuspiciousName(name) {
			t.Errorf("isSuspiciousName(%q) = true, want false", name)
		}
	}
}

func TestIsSuspiciousName_CredentialLikeNamesAreSuspicious(t *testing.T) {
	suspicious := []string{"apiKey", "api_secret_key", "authToken", "password", "db_credential"}
	for _, name := range suspicious {
		if !isSuspiciousName(name) {
			t.Errorf("isSuspiciousName(%q) = false, want true", name)
		}
	}
}

func TestIsSuspiciousName_BareKeyIsSuspicious(t *testing.T) {
	if !isSuspiciousName("key") {
		t.Errorf(`isSuspiciousName("key") = false, want true`)
	}
}

func TestTerraformLineOverride_StructuralTokensSuppressTFLines(t *testing.T) {
	cases := []string{
		`resource "google_kms_keyring" "r" { name = "prod-keyring" }`,
		`resource "google_compute_network" "vpc" {}`,
		`subnetwork = "projects/my-proj/regions/us/subnetworks/default"`,
	}
	for _, line := range cases {
		if !terraformLineOverride("main.tf", line) {
			t.Errorf("terraformLineOverride(%q) = false, want true", line)
		}
	}
}

func TestTerraformLineOverride_OnlyAppliesToTFFiles(t *testing.T) {
	if terraformLineOverride("main.go", `resource "google_kms_keyring" "r" {}`) {
		t.Errorf("expected the override to be scoped to .tf files only")
	}
}

func TestTerraformLineOverride_NonStructuralTFLinesAreUnaffected(t *testing.T) {
	if terraformLineOverride("main.tf", `variable "region" { default = "us-east-1" }`) {
		t.Errorf("did not expect an unrelated .tf line to be overridden")
	}
}
