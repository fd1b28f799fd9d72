// Package slug generates URL-safe slugs from human-readable names.
// Used by the database seeder; slugs are immutable once published.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-safe slug from the given string.
// Example: "Cough and Cold Medicine" becomes "cough-and-cold-medicine".
func Generate(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = invalidChars.ReplaceAllString(out, "")
	out = strings.Join(strings.Fields(out), "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
