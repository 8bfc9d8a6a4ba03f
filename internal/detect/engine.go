package detect

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/secretsentry/secretsentry-cli/internal/catalog"
	"github.com/secretsentry/secretsentry-cli/internal/logging"
)

// dedupKey identifies a line for the purposes of "at most one Finding per
// source line".
type dedupKey struct {
	path string
	line int
}

// Engine runs the three detection layers against one line at a time and
// owns the (path, line) dedup set for a single scan invocation. It must
// not be reused across scans (§5: the dedup set is scoped to one scan).
//
// Engine is safe for concurrent use: callers scanning different files in
// parallel share one Engine and rely on its internal mutex, matching the
// "workers merge findings using the same set semantics" contract in §5.
type Engine struct {
	mu   sync.Mutex
	seen map[dedupKey]struct{}
	log  *logging.Logger
}

// NewEngine creates a fresh engine scoped to one scan. log may be nil.
func NewEngine(log *logging.Logger) *Engine {
	return &Engine{
		seen: make(map[dedupKey]struct{}),
		log:  log,
	}
}

// DetectLine runs the layered detector against one (path, lineNumber,
// lineText) triple. It returns at most one Finding. Empty lines are
// ignored; comment-only lines are NOT ignored — secrets hide there.
func (e *Engine) DetectLine(path string, lineNumber int, lineText string) *Finding {
	if strings.TrimSpace(lineText) == "" {
		return nil
	}
	if terraformLineOverride(path, lineText) {
		return nil
	}

	key := dedupKey{path: path, line: lineNumber}
	e.mu.Lock()
	if _, dup := e.seen[key]; dup {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	finding := e.layerPattern(path, lineText)
	if finding == nil {
		finding = e.layerAssignment(path, lineText)
	}
	if finding == nil {
		finding = e.layerEntropy(path, lineText)
	}
	if finding == nil {
		return nil
	}

	finding.Path = path
	finding.LineNumber = lineNumber
	finding.LineText = lineText

	e.mu.Lock()
	e.seen[key] = struct{}{}
	e.mu.Unlock()

	return finding
}

// layerPattern is L1: regex catalog matching, in catalog order.
func (e *Engine) layerPattern(path, line string) *Finding {
	for _, p := range catalog.Patterns {
		loc := p.Regex.FindStringIndex(line)
		if loc == nil {
			continue
		}
		v := line[loc[0]:loc[1]]

		if shouldSkipValue(v, path) {
			continue
		}
		if p.MinLength > 0 && len(v) < p.MinLength {
			continue
		}

		var entropy float64
		hasEntropy := false
		if p.RequireEntropy {
			entropy = ShannonEntropy(v)
			hasEntropy = true
			if entropy < p.EntropyThreshold {
				continue
			}
		}
		if p.CheckName && !isSuspiciousName(v) {
			continue
		}

		return &Finding{
			MatchedSpan: v,
			Kind:        string(p.Kind),
			Detection:   LayerPattern,
			Entropy:     entropy,
			HasEntropy:  hasEntropy,
		}
	}
	return nil
}

// layerAssignment is L2: suspicious variable/field assignment detection.
func (e *Engine) layerAssignment(path, line string) *Finding {
	for _, shape := range catalog.AssignmentShapes {
		m := shape.Regex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, value := m[1], m[2]

		if shouldSkipValue(value, path) {
			continue
		}
		if !isSuspiciousName(name) {
			continue
		}

		threshold := entropyThresholdForName(name)
		entropy := ShannonEntropy(value)
		if entropy < threshold {
			continue
		}

		return &Finding{
			MatchedSpan:  value,
			Kind:         string(catalog.KindVariableAssign),
			Detection:    LayerAssignment,
			Entropy:      entropy,
			HasEntropy:   true,
			VariableName: name,
		}
	}
	return nil
}

// entropyThresholdForName selects the §4.4 L2 threshold by LHS name.
func entropyThresholdForName(name string) float64 {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "password"):
		return catalog.EntropyPassword
	case strings.Contains(lower, "key"):
		return catalog.EntropyGenericKey
	default:
		return catalog.EntropyDefault
	}
}

// layerEntropy is L3: whole-line high-entropy fallback detection.
func (e *Engine) layerEntropy(path, line string) *Finding {
	h := ShannonEntropy(line)
	if h <= catalog.EntropyDefault {
		return nil
	}
	if shouldSkipValue(line, path) {
		return nil
	}
	return &Finding{
		MatchedSpan: line,
		Kind:        string(catalog.KindHighEntropy),
		Detection:   LayerEntropy,
		Entropy:     h,
		HasEntropy:  true,
	}
}

// SortFindings orders findings deterministically on (path, line,
// detection-layer-priority), the ordering required when per-file scanning
// is parallelized (§5).
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.LineNumber != b.LineNumber {
			return a.LineNumber < b.LineNumber
		}
		return a.Detection < b.Detection
	})
}

// DiscardLogger is a convenience no-op logging destination for callers
// that don't want detection-layer diagnostics.
var DiscardLogger io.Writer = io.Discard
