// Package search implements the keyword-to-category matching engine: an
// in-memory index built from the category and keyword data set, a pure
// scoring engine that turns free-text queries into ranked category results,
// and a holder that lets the index be rebuilt behind concurrent readers.
package search

import "strings"

// Normalize canonicalizes text for matching: lowercase, leading and trailing
// whitespace trimmed, internal whitespace runs collapsed to a single space.
// The same rule is applied to stored keywords, category names, and incoming
// query terms, and it is idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
