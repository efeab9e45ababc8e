// File: services/schedule/parse.go
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// dayLineRe matches one raw availability line: a day marker, a dash, then a
// comma/"e"-delimited list of time expressions, e.g.
// "2a - 8:00, 10:00, 16:00 e 19:30". The separator dash must be surrounded
// by whitespace so hyphenated day names ("segunda-feira") stay intact.
// Lines without the day-dash shape are not an error; they simply
// contribute nothing.
var dayLineRe = regexp.MustCompile(`^\s*(\S+)\s+-\s+(.+)$`)

// separatorRe splits the time list on commas and on the Portuguese "e".
var separatorRe = regexp.MustCompile(`\s*,\s*|\s+e\s+`)

// timeRule pairs one token pattern with its extractor. Rules are evaluated
// in priority order per token and the first full match wins, which keeps
// the overlapping patterns from shadowing each other silently.
type timeRule struct {
	pattern *regexp.Regexp
	extract func(m []string) []string
}

var timeRules = []timeRule{
	// H:MM or HH:MM exact.
	{
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})$`),
		extract: func(m []string) []string { return []string{canonicalTime(m[1], m[2])} },
	},
	// HhMM, e.g. "6h30": interpreted as the start of a range, only the
	// start is kept.
	{
		pattern: regexp.MustCompile(`^(\d{1,2})h(\d{2})$`),
		extract: func(m []string) []string { return []string{canonicalTime(m[1], m[2])} },
	},
	// "H:MM às ...": a range introduced by "às", only the start is kept.
	{
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*às\s`),
		extract: func(m []string) []string { return []string{canonicalTime(m[1], m[2])} },
	},
	// "HhMM às HhMM": BOTH endpoints are emitted as discrete start times.
	// Asymmetric with the rule above on purpose; the legacy data relies on
	// this exact behavior.
	{
		pattern: regexp.MustCompile(`^(\d{1,2})h(\d{2})\s*às\s*(\d{1,2})h(\d{2})$`),
		extract: func(m []string) []string {
			return []string{canonicalTime(m[1], m[2]), canonicalTime(m[3], m[4])}
		},
	},
}

// canonicalTime zero-pads the hour to two digits. Minutes are kept exactly
// as parsed; the legacy importer never range-checked them and migrated data
// must round-trip unchanged.
func canonicalTime(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	return fmt.Sprintf("%02d:%s", h, minute)
}

// ParseAvailabilityLine splits one raw availability line into its day token
// and the deduplicated, sorted list of canonical "HH:MM" start times.
// Returns ok=false when the line has no day-dash marker.
func ParseAvailabilityLine(line string) (day string, times []string, ok bool) {
	m := dayLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", nil, false
	}
	return m[1], extractTokens(m[2]), true
}

// ExtractTimes returns the canonical start times of one raw availability
// line, or nil when the line is malformed.
func ExtractTimes(line string) []string {
	_, times, ok := ParseAvailabilityLine(line)
	if !ok {
		return nil
	}
	return times
}

func extractTokens(list string) []string {
	seen := make(map[string]bool)
	var times []string
	for _, token := range separatorRe.Split(list, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		for _, rule := range timeRules {
			m := rule.pattern.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			for _, t := range rule.extract(m) {
				if !seen[t] {
					seen[t] = true
					times = append(times, t)
				}
			}
			break
		}
	}
	sort.Strings(times)
	return times
}
