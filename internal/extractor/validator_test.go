package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "simple query",
			input: "query GetUser { user { name } }",
			valid: true,
		},
		{
			name:  "subscription keyword counts",
			input: "subscription OnEvent { event { id } }",
			valid: true,
		},
		{
			name:  "keyword case-insensitive",
			input: "QUERY GetUser { user { name } }",
			valid: true,
		},
		{
			name:  "wrapped candidate passes brace-balanced",
			input: `"query": "query { viewer { id } }"`,
			valid: true,
		},
		{
			name:  "no keyword",
			input: "function f() { return { a: 1 }; }",
			valid: false,
		},
		{
			name:  "keyword embedded in identifier",
			input: "queryBuilder { build { result } }",
			valid: false,
		},
		{
			name:  "unbalanced braces",
			input: "query X { a { b }",
			valid: false,
		},
		{
			name:  "no braces at all",
			input: "query GetUser $id ID",
			valid: false,
		},
		{
			name:  "too short",
			input: "query {}",
			valid: false,
		},
		{
			name:  "whitespace does not count toward length",
			input: "   query {}   ",
			valid: false,
		},
		{
			name:  "empty string",
			input: "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.input))
		})
	}
}
