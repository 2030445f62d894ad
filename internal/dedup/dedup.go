// Package dedup collapses GraphQL operations that differ only in
// whitespace, keeping the first occurrence of each.
package dedup

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Operations returns ops with whitespace-insensitive duplicates removed.
// The first occurrence of each operation is kept verbatim and order is
// preserved. Equality is a 64-bit digest of the whitespace-stripped text;
// digest collisions are treated as equality.
func Operations(ops []string) []string {
	seen := make(map[uint64]struct{}, len(ops))
	unique := make([]string, 0, len(ops))

	for _, op := range ops {
		digest := xxhash.Sum64String(stripWhitespace(op))
		if _, dup := seen[digest]; dup {
			continue
		}
		seen[digest] = struct{}{}
		unique = append(unique, op)
	}

	return unique
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
