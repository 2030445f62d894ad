package extractor

import (
	"regexp"
	"strings"
)

var keywordRe = regexp.MustCompile(`(?i)\b(query|mutation|fragment|subscription)\b`)

// IsValid reports whether a candidate plausibly contains a GraphQL
// operation: an operation keyword is present, braces are balanced and
// non-empty, and the text is long enough to rule out stray matches. No
// deeper syntax checking happens here; wrapper tokens and JSON escaping are
// the Formatter's problem.
func IsValid(candidate string) bool {
	if !keywordRe.MatchString(candidate) {
		return false
	}

	opens := strings.Count(candidate, "{")
	closes := strings.Count(candidate, "}")
	if opens != closes || opens == 0 {
		return false
	}

	return len(strings.TrimSpace(candidate)) >= 10
}
