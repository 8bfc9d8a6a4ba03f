// Package diffparse converts a unified diff stream into (path, line,
// text) triples restricted to added lines (§4.3).
package diffparse

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/secretsentry/secretsentry-cli/internal/logging"
)

// AddedLine is one added line in the new-file coordinate space.
type AddedLine struct {
	Path       string
	LineNumber int
	Text       string
}

type state int

const (
	stateIdle state = iota
	stateHeader
	stateBody
)

// Parse walks diff, a unified diff's raw text, and returns every added
// line across every file, in the order they appear.
func Parse(diff string, log *logging.Logger) []AddedLine {
	var out []AddedLine

	st := stateIdle
	var path string
	nextLine := 0

	scanner := bufio.NewScanner(strings.NewReader(diff))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "diff --git "):
			st = stateIdle
			path = ""
			nextLine = 0
			continue
		}

		switch st {
		case stateIdle:
			// Already reset above; nothing else to do until "+++ b/..."
			// is seen, which only occurs once we're past "diff --git".
			if strings.HasPrefix(line, "+++ b/") {
				path = strings.TrimPrefix(line, "+++ b/")
				st = stateHeader
			}
		case stateHeader:
			if strings.HasPrefix(line, "@@") {
				nextLine = parseHunkHeader(line, log, path)
				st = stateBody
			} else if strings.HasPrefix(line, "+++ b/") {
				path = strings.TrimPrefix(line, "+++ b/")
			}
		case stateBody:
			switch {
			case strings.HasPrefix(line, "+++ "):
				// Shouldn't normally occur mid-body, but treat as a new
				// file header defensively.
				path = strings.TrimPrefix(line, "+++ b/")
				st = stateHeader
			case strings.HasPrefix(line, "@@"):
				nextLine = parseHunkHeader(line, log, path)
			case strings.HasPrefix(line, "+"):
				out = append(out, AddedLine{Path: path, LineNumber: nextLine, Text: line[1:]})
				nextLine++
			default:
				// context or "-" removal line: ignore.
			}
		}
	}

	return out
}

// parseHunkHeader extracts the new-file starting line number from a
// "@@ -a,b +c,d @@" header. A malformed header resets to 0 and is logged.
func parseHunkHeader(line string, log *logging.Logger, path string) int {
	idx := strings.Index(line, "+")
	if idx < 0 {
		log.Logf(path, "malformed hunk header: %q", line)
		return 0
	}
	rest := line[idx+1:]
	end := strings.IndexAny(rest, ", @")
	if end < 0 {
		log.Logf(path, "malformed hunk header: %q", line)
		return 0
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		log.Logf(path, "malformed hunk header: %q", line)
		return 0
	}
	return n
}
