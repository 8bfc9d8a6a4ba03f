package catalog

import "strings"

// ExcludedExtensions are file extensions never worth scanning: binaries,
// media, archives, fonts, office documents. Matched case-insensitively.
var ExcludedExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".webp": {}, ".svg": {}, ".mp3": {}, ".mp4": {}, ".mov": {}, ".avi": {},
	".wav": {}, ".flac": {}, ".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {},
	".7z": {}, ".rar": {}, ".jar": {}, ".war": {}, ".ear": {}, ".ttf": {},
	".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {}, ".doc": {}, ".docx": {},
	".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {}, ".pdf": {}, ".exe": {},
	".dll": {}, ".so": {}, ".dylib": {}, ".class": {}, ".pyc": {}, ".o": {},
	".a": {}, ".lock": {},
}

// ExcludedDirTokens are path component names that remove a whole subtree
// from scanning, matched case-insensitively against each path component.
var ExcludedDirTokens = map[string]struct{}{
	".git": {}, ".hg": {}, ".svn": {},
	"node_modules": {}, "vendor": {}, "dist": {}, "build": {}, "target": {},
	"__pycache__": {}, ".venv": {}, "venv": {}, "env": {},
	"test": {}, "tests": {}, "testdata": {}, "fixtures": {}, "__mocks__": {},
}

// ExcludedFilenameSubstrings removes files whose basename contains any of
// these substrings, case-insensitively — "test" anywhere in the basename
// is the dominant signal for hand-authored throwaway fixtures.
var ExcludedFilenameSubstrings = []string{
	"test",
}

// ExtFalsePositives holds per-extension dictionaries of identifier-like
// strings that must never count as secrets: DOM/event names, framework
// hooks, CSS properties, HTML/meta attributes, Terraform resource type
// names, HTTP status words — values the pack's scanners repeatedly single
// out as the dominant false-positive source for entropy/assignment hits.
var ExtFalsePositives = map[string]map[string]struct{}{
	".js":  jsTsFalsePositives,
	".ts":  jsTsFalsePositives,
	".jsx": jsTsFalsePositives,
	".tsx": jsTsFalsePositives,
	".jsp": jspJavaFalsePositives,
	".java": jspJavaFalsePositives,
	".css":  cssFalsePositives,
	".scss": cssFalsePositives,
	".html": htmlFalsePositives,
	".xml":  htmlFalsePositives,
	".tf":   terraformFalsePositives,
}

var jsTsFalsePositives = toSet(
	"onclick", "onchange", "onsubmit", "onload", "onerror", "onfocus", "onblur",
	"useeffect", "usestate", "usecontext", "usereducer", "usememo", "usecallback",
	"useref", "componentdidmount", "componentwillunmount", "buttonkey",
	"primarykey", "foreignkey", "keycode", "keydown", "keyup", "keypress",
)

var jspJavaFalsePositives = toSet(
	"getparameter", "getattribute", "getproperty", "getheader", "setattribute",
	"setproperty", "primarykey", "foreignkey", "keycode", "beanname",
)

var cssFalsePositives = toSet(
	"background-color", "border-color", "font-family", "text-align",
	"box-shadow", "border-radius", "linear-gradient", "justify-content",
)

var htmlFalsePositives = toSet(
	"charset", "viewport", "stylesheet", "rel", "hreflang", "autocomplete",
	"placeholder", "aria-label", "aria-hidden", "data-testid",
)

var terraformFalsePositives = toSet(
	"keyrings", "networks", "subnetworks", "projects/",
	"google_compute_network", "google_kms_keyring",
)

// GlobalLowValue is a case-insensitive dictionary of literal values that
// are near-universal placeholders and never secrets on their own.
var GlobalLowValue = toSet(
	"true", "false", "none", "null", "undefined", "localhost", "password",
	"username", "user", "test", "example", "demo",
)

// ProgrammingTerms covers UI verbs, data-binding terms, web/HTTP verbs and
// file-path words that commonly satisfy a pattern's shape but are inert.
var ProgrammingTerms = toSet(
	"button", "click", "submit", "primarykey", "foreignkey", "keycode",
	"get", "post", "put", "delete", "patch", "head", "options",
	"src", "href", "path", "dir", "file", "folder",
)

// NaturalLanguage covers month/weekday words, HTTP status words and
// auth-status words that reliably trip the entropy layer on descriptive
// prose but are never secrets.
var NaturalLanguage = toSet(
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"ok", "created", "accepted", "notfound", "forbidden", "unauthorized",
	"badrequest", "internalservererror", "unauthorized", "forbidden",
	"authenticated", "unauthenticated", "expired", "revoked",
)

// AuthorizationPhrases are multi-word phrases that mark a line as a log
// message or error string rather than a credential.
var AuthorizationPhrases = []string{
	"access denied", "permission denied", "authentication failed",
	"not authorized", "invalid credentials", "login failed",
}

// DescriptiveMarkers mark a value as descriptive text rather than an
// opaque secret when present as a whole word in context.
var DescriptiveMarkers = []string{
	"description", "message", "status", "response", "payload", "summary",
	"title", "label", "comment", "note",
}

// EnglishFunctionWords are used to detect prose: a space-containing value
// whose tokens include several of these is natural language, not a secret.
var EnglishFunctionWords = toSet(
	"the", "a", "an", "is", "was", "are", "were", "to", "of", "in", "on",
	"and", "or", "for", "with", "by", "this", "that", "be", "has", "have",
)

// KnownTLDs is used by the structural-marker suppression check.
var KnownTLDs = []string{
	".com", ".org", ".net", ".io", ".dev", ".co", ".ai", ".edu", ".gov",
}

// NonSecretExtensions are extensions that, when found embedded as a
// substring suffix of a candidate value, indicate a file path/URL rather
// than a secret.
var NonSecretExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".css", ".js", ".html", ".json",
}

// TemplateFragments mark templating syntax, which is never an opaque secret.
var TemplateFragments = []string{"${", "#{", "{{"}

// CodeKeywordPrefixes mark the start of a statement, not a bare literal.
var CodeKeywordPrefixes = []string{"function(", "return ", "var ", "let ", "const "}

// IdentifierRoleSuffixes are suffixes that make a name read as a
// structural identifier rather than a secret-holding variable.
var IdentifierRoleSuffixes = []string{"key", "id", "name", "type"}

// NonSecretPrefixes are name prefixes that indicate a UI/structural role
// even when the name ends with an identifier-role suffix.
var NonSecretPrefixes = []string{"button", "press", "primary"}

// JSPJavaSafeNames are LHS names that look suspicious but are routine
// accessor/role names in JSP/Java code: method accessors, DB-key roles,
// UI-key roles, framework roles.
var JSPJavaSafeNames = toSet(
	"primarykey", "foreignkey", "beanname", "servletcontextkey",
	"sessionkey", "requestkey", "attributekey",
)

// MethodSuffixes end a name that is a method/role name, not a secret holder.
var MethodSuffixes = []string{"parameter", "attribute", "property", "value", "item"}

// AccessorPrefixes begin a name that is an accessor method, not a secret holder.
var AccessorPrefixes = []string{"get", "set", "has", "is", "contains", "remove", "add"}

// AuthStatusWords are names/words describing an auth outcome, not a secret.
var AuthStatusWords = toSet(
	"authenticated", "unauthenticated", "authorized", "unauthorized",
	"forbidden", "expired", "revoked", "denied", "granted",
)

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}
