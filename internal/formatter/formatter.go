// Package formatter strips embedding syntax from extracted GraphQL
// operations and re-indents them into a canonical layout. It is driven by
// brace, comma and newline tokens only; it knows nothing about GraphQL
// grammar and relies on the upstream validator for brace balance.
package formatter

import (
	"regexp"
	"strings"
)

const (
	fenceOpen  = "```graphql\n"
	fenceClose = "\n```"
	indentUnit = "  "
)

// Wrapper tokens that embed an operation in JavaScript or JSON but are not
// part of the operation itself. Each substitution is independent; a wrapper
// that is not present is a no-op.
var wrapperStrips = []*regexp.Regexp{
	regexp.MustCompile("gql`"),
	regexp.MustCompile("`"),
	regexp.MustCompile(`graphql\s*\(`),
	regexp.MustCompile(`^\)`),
	regexp.MustCompile(`\)$`),
	regexp.MustCompile(`["'](query|mutation)["']\s*:\s*["']`),
	regexp.MustCompile(`^["']`),
	regexp.MustCompile(`["']$`),
}

var (
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
	blankLineRe = regexp.MustCompile(`\n\s*\n`)
	innerSpaces = regexp.MustCompile(` {2,}`)
)

// JSON-embedded payloads carry their newlines and quotes as escape
// sequences.
var unescaper = strings.NewReplacer(`\n`, "\n", `\t`, " ", `\"`, `"`)

// Format cleans and re-indents an operation and wraps it in a graphql
// fenced block. Formatting an already-formatted body again is stable.
func Format(operation string) string {
	return fenceOpen + Clean(operation) + fenceClose
}

// Clean returns the canonical un-fenced body of an operation: wrappers
// stripped, whitespace normalized, one field per line, two-space indent per
// brace depth.
func Clean(operation string) string {
	s := operation
	s = strings.TrimSpace(s)
	for _, re := range wrapperStrips {
		s = re.ReplaceAllString(s, "")
	}
	s = unescaper.Replace(s)
	s = hspaceRe.ReplaceAllString(s, " ")
	s = blankLineRe.ReplaceAllString(s, "\n")
	s = strings.TrimSpace(s)
	return tidy(reindent(s))
}

// reindent walks the text one byte at a time tracking brace depth. A single
// space directly after an emitted indent is swallowed so that collapsed
// source whitespace does not widen the indentation.
func reindent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	level := 0
	eatSpace := false

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			b.WriteString(" {\n")
			level++
			writeIndent(&b, level)
			eatSpace = true
		case '}':
			if level > 0 {
				level--
			}
			b.WriteString("\n")
			writeIndent(&b, level)
			b.WriteByte('}')
			eatSpace = false
		case ',':
			b.WriteString(",\n")
			writeIndent(&b, level)
			eatSpace = true
		case '\n':
			b.WriteString("\n")
			writeIndent(&b, level)
			eatSpace = true
		default:
			if !eatSpace || c != ' ' {
				b.WriteByte(c)
			}
			eatSpace = false
		}
	}

	return b.String()
}

func writeIndent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString(indentUnit)
	}
}

// tidy drops whitespace-only lines, trims trailing space and collapses
// interior space runs while leaving the leading indent intact.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		rest := strings.TrimRight(strings.TrimLeft(line, " "), " \t\r")
		kept = append(kept, indent+innerSpaces.ReplaceAllString(rest, " "))
	}
	return strings.Join(kept, "\n")
}
