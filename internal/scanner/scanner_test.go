package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlhound/gqlhound/internal/extractor"
)

func TestScanDocumentMinimalQuery(t *testing.T) {
	text := "const q = `query GetUser($id: ID!) { user(id: $id) { name } }`;"

	ops := ScanDocument(text)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, 1, op.Index)
	assert.Equal(t, []extractor.Variable{{Name: "id", Type: "ID!"}}, op.Variables)
	assert.Equal(t,
		"```graphql\nquery GetUser($id: ID!) {\n  user(id: $id) {\n    name\n  }\n}\n```",
		op.Rendered)
}

func TestScanDocumentNoGraphQL(t *testing.T) {
	inputs := []string{
		"",
		"var x = 1;",
		"function f() { return { a: { b: 1 } }; }",
		"<html><body>hello</body></html>",
	}
	for _, text := range inputs {
		assert.Empty(t, ScanDocument(text), "input %q", text)
	}
}

func TestScanDocumentDuplicatesCollapse(t *testing.T) {
	text := "a = `query GetA { a { id } }`; b = `query  GetA  {  a  {  id  }  }`;"

	ops := ScanDocument(text)
	require.Len(t, ops, 1)
	assert.Equal(t, "query GetA { a { id } }", ops[0].Raw)
}

func TestScanDocumentUnbalancedBracesExcluded(t *testing.T) {
	assert.Empty(t, ScanDocument("query X { a"))
}

func TestScanDocumentJSONEmbeddedQuery(t *testing.T) {
	text := `fetch("/api", {body: JSON.stringify({"query": "query { viewer { id } }"})});`

	ops := ScanDocument(text)
	require.NotEmpty(t, ops)

	want := "```graphql\nquery {\n  viewer {\n    id\n  }\n}\n```"
	for _, op := range ops {
		assert.Equal(t, want, op.Rendered)
		assert.NotContains(t, op.Rendered, `"query":`)
	}
}

func TestScanDocumentBraceBalancePreserved(t *testing.T) {
	text := "gql`query Deep { a { b { c { d } } } }`"

	ops := ScanDocument(text)
	require.NotEmpty(t, ops)
	for _, op := range ops {
		stripped := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(op.Raw)
		assert.Equal(t, strings.Count(stripped, "{"), strings.Count(stripped, "}"))
	}
}

func TestScanDocumentIndexesAreSequential(t *testing.T) {
	text := "query A { a { x } } ... mutation B { b { y } } ... fragment F on T { z { w } }"

	ops := ScanDocument(text)
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, i+1, op.Index)
	}
	assert.True(t, strings.HasPrefix(ops[0].Raw, "query A"))
	assert.True(t, strings.HasPrefix(ops[1].Raw, "mutation B"))
	assert.True(t, strings.HasPrefix(ops[2].Raw, "fragment F"))
}

func TestOperationSignature(t *testing.T) {
	ops := ScanDocument("const q = `query GetUser($id: ID!) { user(id: $id) { name } }`;")
	require.Len(t, ops, 1)
	assert.Equal(t, "query GetUser($id: ID!)", ops[0].Signature())
}
