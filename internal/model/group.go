package model

import "regexp"

// SplitByLinesMatching splits lines into groups, starting a new group at
// every line matching pattern. The matching line is the first line of the
// group it starts. Empty groups are dropped, so a leading group only exists
// when some lines precede the first match.
func SplitByLinesMatching(pattern *regexp.Regexp, lines []string) [][]string {
	groups := [][]string{nil}
	for _, l := range lines {
		if pattern.MatchString(l) {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], l)
	}

	result := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			result = append(result, g)
		}
	}
	return result
}

var (
	// monitorBoundary starts an output stanza: anything without leading whitespace.
	monitorBoundary = regexp.MustCompile(`^\S`)
	// modeBoundary starts a mode stanza, indented by exactly two spaces.
	modeBoundary = regexp.MustCompile(`^  [^ ]`)
	// fieldBoundary starts a labeled property, indented by a single tab.
	fieldBoundary = regexp.MustCompile(`^\t[^ \t]`)
)
