// Package scanner ties the extraction pipeline together: match candidates,
// validate them, collapse duplicates, then extract variables and render
// each survivor. Everything here is a pure function over the input text, so
// callers may scan many documents concurrently without coordination.
package scanner

import (
	"strings"

	"github.com/gqlhound/gqlhound/internal/dedup"
	"github.com/gqlhound/gqlhound/internal/extractor"
	"github.com/gqlhound/gqlhound/internal/formatter"
	"github.com/gqlhound/gqlhound/utils"
)

// Operation is one unique GraphQL operation discovered in a document.
type Operation struct {
	// Index is 1-based within the document it was found in.
	Index int `json:"index"`
	// Raw is the operation as matched, wrappers and all.
	Raw string `json:"raw"`
	// Variables are the declared $name: Type pairs, in order of appearance.
	Variables []extractor.Variable `json:"variables,omitempty"`
	// Rendered is the cleaned, re-indented operation in a graphql fenced
	// block.
	Rendered string `json:"rendered"`
}

// Signature returns the operation's header line, e.g.
// "query GetUser($id: ID!)", for compact display.
func (o Operation) Signature() string {
	body := strings.TrimPrefix(o.Rendered, "```graphql\n")
	line := utils.FirstLine(body)
	return strings.TrimSpace(strings.TrimSuffix(line, "{"))
}

// ScanDocument extracts every unique GraphQL operation from one document's
// text. Text with nothing that resembles GraphQL yields an empty result,
// never an error.
func ScanDocument(text string) []Operation {
	candidates := extractor.FindCandidates(text)

	var valid []string
	for _, c := range candidates {
		if extractor.IsValid(c.Text) {
			valid = append(valid, c.Text)
		}
	}

	unique := dedup.Operations(valid)

	ops := make([]Operation, 0, len(unique))
	for i, raw := range unique {
		ops = append(ops, Operation{
			Index:     i + 1,
			Raw:       raw,
			Variables: extractor.ExtractVariables(raw),
			Rendered:  formatter.Format(raw),
		})
	}
	return ops
}
