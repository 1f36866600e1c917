package console

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

var durationSuffixes = []struct {
	names []string
	hours float64
	unit  string
}{
	{names: []string{"hours", "hrs", "hr", "h"}, hours: 1, unit: "hours"},
	{names: []string{"minutes", "mins", "min", "m"}, hours: 1.0 / 60, unit: "minutes"},
	{names: []string{"seconds", "secs", "sec", "s"}, hours: 1.0 / 3600, unit: "seconds"},
}

// parseDurationToken reads a duration argument. A bare number counts as
// hours; h/m/s suffixes pick the unit.
func parseDurationToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, Hours: float64(n), Unit: "hours"}
	}
	for _, suffix := range durationSuffixes {
		for _, name := range suffix.names {
			if !strings.HasSuffix(token, name) {
				continue
			}
			if v, err := strconv.Atoi(strings.TrimSuffix(token, name)); err == nil && v >= 0 {
				return &Quantity{Raw: token, Hours: float64(v) * suffix.hours, Unit: suffix.unit}
			}
		}
	}
	return nil
}

// unitWord matches a standalone duration unit token ("minutes", "h").
func unitWord(token string) (float64, string, bool) {
	token = strings.TrimSpace(strings.ToLower(token))
	for _, suffix := range durationSuffixes {
		for _, name := range suffix.names {
			if token == name {
				return suffix.hours, suffix.unit, true
			}
		}
	}
	return 0, "", false
}

// isHereWord reports whether the token names the player's current
// region instead of a real one.
func isHereWord(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "here", "local", "locally":
		return true
	default:
		return false
	}
}
