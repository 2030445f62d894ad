package extractor

import (
	"regexp"
)

// Pattern identifies which heuristic produced a candidate.
type Pattern string

const (
	PatternOperation     Pattern = "operation"
	PatternTemplate      Pattern = "gql-template"
	PatternFunctionCall  Pattern = "graphql-call"
	PatternJSONQuery     Pattern = "json-query"
	PatternOperationName Pattern = "operation-name"
)

// Candidate is a substring of the scanned text that may contain a GraphQL
// operation, together with the pattern that matched it.
type Candidate struct {
	Text    string
	Pattern Pattern
}

var (
	// Anchor for operation blocks: keyword, optional name, optional
	// argument list, optional fragment type condition. The brace body is
	// consumed by a balanced-brace scan starting at the trailing "{", so
	// arbitrary nesting depth is supported.
	operationStartRe = regexp.MustCompile(`(?is)\b(query|mutation|fragment)\b\s*\w*\s*(?:\([^)]*\))?\s*(?:on\s+\w+\s*)?\{`)

	templateRe      = regexp.MustCompile("(?is)gql`([^`]*)`")
	functionCallRe  = regexp.MustCompile(`(?is)graphql\s*\(\s*["']([^"']+)["']\s*\)`)
	jsonQueryRe     = regexp.MustCompile(`(?is)["']query["']\s*:\s*["']([^"']+)["']`)
	operationNameRe = regexp.MustCompile(`(?is)operationName\s*:\s*["']([^"']+)["']`)
)

// FindCandidates applies every extraction pattern to text and returns all
// matches. Patterns run independently; overlapping matches across patterns
// are expected and left for deduplication downstream. A misbehaving pattern
// is skipped rather than aborting the scan.
func FindCandidates(text string) []Candidate {
	var candidates []Candidate

	runPattern(&candidates, func() []Candidate {
		return matchOperationBlocks(text)
	})
	runPattern(&candidates, func() []Candidate {
		return matchWhole(text, templateRe, PatternTemplate)
	})
	runPattern(&candidates, func() []Candidate {
		return matchWhole(text, functionCallRe, PatternFunctionCall)
	})
	runPattern(&candidates, func() []Candidate {
		return matchWhole(text, jsonQueryRe, PatternJSONQuery)
	})
	runPattern(&candidates, func() []Candidate {
		return matchWhole(text, operationNameRe, PatternOperationName)
	})

	return candidates
}

func runPattern(out *[]Candidate, fn func() []Candidate) {
	defer func() {
		// A single broken pattern must not take down the whole scan.
		_ = recover()
	}()
	*out = append(*out, fn()...)
}

func matchWhole(text string, re *regexp.Regexp, p Pattern) []Candidate {
	var found []Candidate
	for _, m := range re.FindAllString(text, -1) {
		found = append(found, Candidate{Text: m, Pattern: p})
	}
	return found
}

// matchOperationBlocks finds query/mutation/fragment headers and consumes
// their brace-delimited bodies with an explicit nesting counter. Braces that
// appear inside string literals do not affect the count.
func matchOperationBlocks(text string) []Candidate {
	var found []Candidate
	offset := 0
	for offset < len(text) {
		loc := operationStartRe.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		start := offset + loc[0]
		braceAt := offset + loc[1] - 1
		end, ok := consumeBraceBlock(text, braceAt)
		if !ok {
			// Unterminated body: skip past the header and keep looking.
			offset = braceAt + 1
			continue
		}
		found = append(found, Candidate{Text: text[start:end], Pattern: PatternOperation})
		offset = end
	}
	return found
}

// consumeBraceBlock scans from an opening brace to its matching close brace
// and returns the index one past the close. Single-, double- and
// backtick-quoted literals are opaque, including escaped quotes.
func consumeBraceBlock(text string, open int) (int, bool) {
	depth := 0
	var quote byte
	for i := open; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
