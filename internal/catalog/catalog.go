// Package catalog holds the frozen, read-only detection catalog: regex
// patterns, entropy thresholds, exclusion sets and false-positive
// dictionaries. The catalog is compiled once at process start and never
// mutated afterward; adding a detector is an addition to this package,
// never a change to the engine that walks it.
package catalog

import "regexp"

// Kind identifies the shape of secret a Pattern detects.
type Kind string

const (
	KindAWSAccessKey      Kind = "AWS Access Key ID"
	KindAWSSessionToken   Kind = "AWS Session Token"
	KindGoogleAPIKey      Kind = "Google API Key"
	KindSlackToken        Kind = "Slack Token"
	KindStripeLiveKey     Kind = "Stripe Live Key"
	KindStripeSecretKey   Kind = "Stripe Secret Key"
	KindSendGridKey       Kind = "SendGrid API Key"
	KindSquareToken       Kind = "Square Access Token"
	KindGitHubPAT         Kind = "GitHub Personal Access Token"
	KindGitHubOtherToken  Kind = "GitHub Token"
	KindGitLabPAT         Kind = "GitLab Personal Access Token"
	KindOpenAIKey         Kind = "OpenAI API Key"
	KindJWT               Kind = "JSON Web Token"
	KindSSHPublicKey      Kind = "SSH Public Key"
	KindPEMPrivateKey     Kind = "PEM Private Key"
	KindGenericHex        Kind = "Generic Hex Digest"
	KindGenericBase64     Kind = "Generic Base64 Blob"
	KindGenericBearer     Kind = "Bearer Token"
	KindVariableAssign    Kind = "Variable Assignment"
	KindHighEntropy       Kind = "High Entropy (H)"
)

// Pattern is a single catalog entry. Order in Patterns is significant:
// the first pattern that matches and survives suppression on a line wins.
type Pattern struct {
	Name             string
	Kind             Kind
	Regex            *regexp.Regexp
	MinLength        int
	RequireEntropy   bool
	EntropyThreshold float64
	CheckName        bool
}

// Named entropy thresholds. generic_key is intentionally high: "…Key"
// identifiers are extremely common in ordinary code and would otherwise
// swamp output.
const (
	EntropyDefault    = 3.5
	EntropyPassword   = 3.0
	EntropyGenericKey = 4.3
)

// Patterns is the frozen pattern catalog, in match-priority order.
var Patterns = []Pattern{
	{
		Name:  "aws_access_key_id",
		Kind:  KindAWSAccessKey,
		Regex: regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	},
	{
		Name:  "aws_session_token",
		Kind:  KindAWSSessionToken,
		Regex: regexp.MustCompile(`ASIA[0-9A-Z]{16}`),
	},
	{
		Name:  "google_api_key",
		Kind:  KindGoogleAPIKey,
		Regex: regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
	},
	{
		Name:  "slack_token",
		Kind:  KindSlackToken,
		Regex: regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,48}`),
	},
	{
		Name:  "stripe_live_key",
		Kind:  KindStripeLiveKey,
		Regex: regexp.MustCompile(`sk_live_[0-9A-Za-z]{24,}`),
	},
	{
		Name:  "stripe_secret_key",
		Kind:  KindStripeSecretKey,
		Regex: regexp.MustCompile(`(?:r|p)k_live_[0-9A-Za-z]{24,}`),
	},
	{
		Name:  "sendgrid_key",
		Kind:  KindSendGridKey,
		Regex: regexp.MustCompile(`SG\.[0-9A-Za-z_\-]{22}\.[0-9A-Za-z_\-]{43}`),
	},
	{
		Name:  "square_access_token",
		Kind:  KindSquareToken,
		Regex: regexp.MustCompile(`sq0atp-[0-9A-Za-z_\-]{22}`),
	},
	{
		Name:  "github_pat",
		Kind:  KindGitHubPAT,
		Regex: regexp.MustCompile(`ghp_[0-9A-Za-z]{36}`),
	},
	{
		Name:  "github_other_token",
		Kind:  KindGitHubOtherToken,
		Regex: regexp.MustCompile(`gh[ousr]_[0-9A-Za-z]{36,255}`),
	},
	{
		Name:  "gitlab_pat",
		Kind:  KindGitLabPAT,
		Regex: regexp.MustCompile(`glpat-[0-9A-Za-z_\-]{20}`),
	},
	{
		Name:  "openai_key",
		Kind:  KindOpenAIKey,
		Regex: regexp.MustCompile(`sk-[A-Za-z0-9]{36,}`),
	},
	{
		Name:  "jwt",
		Kind:  KindJWT,
		Regex: regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
	},
	{
		Name:  "ssh_public_key",
		Kind:  KindSSHPublicKey,
		Regex: regexp.MustCompile(`ssh-(?:rsa|ed25519|dss) [A-Za-z0-9+/]{20,}={0,3}`),
	},
	{
		Name:  "pem_private_key",
		Kind:  KindPEMPrivateKey,
		Regex: regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`),
	},
	{
		Name:             "generic_hex_digest",
		Kind:             KindGenericHex,
		Regex:            regexp.MustCompile(`\b[0-9a-fA-F]{40}\b|\b[0-9a-fA-F]{32}\b`),
		MinLength:        32,
		RequireEntropy:   true,
		EntropyThreshold: EntropyGenericKey,
	},
	{
		Name:             "generic_base64_blob",
		Kind:             KindGenericBase64,
		Regex:            regexp.MustCompile(`[A-Za-z0-9+/]{64,}={0,2}`),
		MinLength:        64,
		RequireEntropy:   true,
		EntropyThreshold: EntropyGenericKey,
	},
	{
		Name:  "generic_bearer",
		Kind:  KindGenericBearer,
		Regex: regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.=]{10,}`),
	},
}

// AssignmentShape is one of the four LHS/RHS literal shapes L2 tries, in
// order, against a whole line.
type AssignmentShape struct {
	Name  string
	Regex *regexp.Regexp
}

// AssignmentShapes enumerates the quoted/templated assignment forms L2
// recognizes. Capture group 1 is the variable/field name, group 2 the
// literal value.
var AssignmentShapes = []AssignmentShape{
	{
		Name:  "double_quoted",
		Regex: regexp.MustCompile(`(?:^|[\s.])([A-Za-z_][A-Za-z0-9_.]*)\s*[:=]\s*"([^"]*)"`),
	},
	{
		Name:  "single_quoted",
		Regex: regexp.MustCompile(`(?:^|[\s.])([A-Za-z_][A-Za-z0-9_.]*)\s*[:=]\s*'([^']*)'`),
	},
	{
		Name:  "triple_quoted",
		Regex: regexp.MustCompile(`(?:^|[\s.])([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*"""([^"]*)"""`),
	},
	{
		Name:  "template_literal",
		Regex: regexp.MustCompile("(?:^|[\\s.])([A-Za-z_][A-Za-z0-9_.]*)\\s*=\\s*`([^`]*)`"),
	},
}
