package server

import (
	"regexp"
	"strings"
)

// OriginValidator builds a predicate over the configured allowed origins.
// An entry may be an exact origin, "*", or a wildcard pattern such as
// https://*.example.app that matches any single-label subdomain.
func OriginValidator(allowed []string) func(string) bool {
	exact := make(map[string]bool, len(allowed))
	var patterns []*regexp.Regexp
	allowAll := false

	for _, origin := range allowed {
		switch {
		case origin == "*":
			allowAll = true
		case strings.Contains(origin, "*"):
			if re, err := wildcardPattern(origin); err == nil {
				patterns = append(patterns, re)
			}
		default:
			exact[origin] = true
		}
	}

	return func(origin string) bool {
		if allowAll || exact[origin] {
			return true
		}
		for _, re := range patterns {
			if re.MatchString(origin) {
				return true
			}
		}
		return false
	}
}

// wildcardPattern compiles an origin pattern with "*" placeholders into an
// anchored regexp. The placeholder spans labels, so https://*.example.app
// accepts https://preview.example.app and https://a.b.example.app alike.
// Anchoring keeps suffix tricks like https://x.example.app.attacker.io out.
func wildcardPattern(pattern string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)
	return regexp.Compile("^" + quoted + "$")
}
